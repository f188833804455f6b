package bitarray

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	for _, s := range []string{"", "10101", "10101001", "101010010"} {
		assert.Equal(t, s, FromString(s).String())
	}

	t.Run("any non-zero byte sets the bit", func(t *testing.T) {
		assert.Equal(t, "11011", FromString("1a0 x").String())
	})

	t.Run("tail stays clear", func(t *testing.T) {
		bits := FromString("11111111111")
		assert.Equal(t, []byte{0xff, 0b00000111}, bits.data)
	})
}

func TestFromBools(t *testing.T) {
	tests := []struct {
		values   []bool
		expected string
	}{
		{nil, ""},
		{[]bool{true, false, true, false, true}, "10101"},
		{[]bool{true, false, true, false, true, false, false, true}, "10101001"},
		{[]bool{true, false, true, false, true, false, false, true, false}, "101010010"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FromBools(tt.values).String())
	}
}

func TestFromSeq(t *testing.T) {
	bits := FromSeq(slices.Values([]bool{true, true, false}))
	assert.Equal(t, "110", bits.String())

	assert.Equal(t, "", FromSeq(slices.Values([]bool(nil))).String())
}

func TestFromValues(t *testing.T) {
	values := []any{
		true, false,
		nil,
		1.0, 0.0,
		"x", "", "0", "0.0",
		[]any{}, []any{false},
		map[string]any{}, map[string]any{"a": nil},
		3, 0,
	}
	assert.Equal(t, "10"+"0"+"10"+"1001"+"01"+"01"+"10", FromValues(values).String())

	t.Run("other numeric kinds", func(t *testing.T) {
		values := []any{
			uint8(0), int8(0), int16(0), uint16(0), int32(0), int64(0), uint(0), uint32(0), uint64(0), float32(0),
			uint8(1), int8(-1), int16(2), uint16(3), int32(4), int64(5), uint(6), uint32(7), uint64(8), float32(0.5),
		}
		assert.Equal(t, "0000000000"+"1111111111", FromValues(values).String())
	})

	t.Run("json numbers", func(t *testing.T) {
		values := []any{json.Number("0"), json.Number("0.0"), json.Number("1"), json.Number("-2.5")}
		assert.Equal(t, "0011", FromValues(values).String())
	})

	t.Run("containers by length", func(t *testing.T) {
		values := []any{
			[]bool{}, []bool{false},
			[]int(nil), [2]int{},
			map[string]int{}, map[int]bool{1: false},
			[0]string{},
		}
		assert.Equal(t, "01"+"01"+"01"+"0", FromValues(values).String())
	})

	t.Run("pointers and named kinds", func(t *testing.T) {
		type flag bool
		type label string
		var nilPtr *int
		zero := 0
		values := []any{nilPtr, &zero, flag(true), flag(false), label("0"), label("x"), struct{}{}}
		assert.Equal(t, "01"+"10"+"01"+"1", FromValues(values).String())
	})
}

func TestFromUint(t *testing.T) {
	tests := []struct {
		width    int
		value    uint64
		expected string
	}{
		{5, 5, "00101"},
		{8, 1, "00000001"},
		{8, 128, "10000000"},
		{8, 255, "11111111"},
		{9, 256, "100000000"},
		{3, 6, "110"},
		{0, 0, ""},
		{1, 1, "1"},
		{64, 1<<63 | 1, "1" + strings.Repeat("0", 62) + "1"},
		{70, 1, strings.Repeat("0", 69) + "1"},
	}
	for _, tt := range tests {
		bits, err := FromUint(tt.width, tt.value)
		require.NoError(t, err, "FromUint(%d, %d)", tt.width, tt.value)
		assert.Equal(t, tt.expected, bits.String(), "FromUint(%d, %d)", tt.width, tt.value)
	}

	t.Run("does not fit", func(t *testing.T) {
		for _, tt := range []struct {
			width int
			value uint64
		}{
			{3, 8},
			{0, 1},
			{8, 256},
			{-1, 0},
		} {
			_, err := FromUint(tt.width, tt.value)
			var de *ErrDomain
			require.ErrorAs(t, err, &de, "FromUint(%d, %d)", tt.width, tt.value)
			assert.Equal(t, tt.width, de.Width)
			assert.Equal(t, tt.value, de.Value)
		}
	})
}
