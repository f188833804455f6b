package bitarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	bits := FromString("1001")

	var keys []int
	var values []bool
	for it := bits.Iterator(); it.Valid(); it.Next() {
		v, err := it.Current()
		require.NoError(t, err)
		keys = append(keys, it.Key())
		values = append(values, v)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, keys)
	assert.Equal(t, []bool{true, false, false, true}, values)
}

func TestIterator_Exhausted(t *testing.T) {
	it := NewIterator(FromString("1"))
	it.Next()

	assert.False(t, it.Valid())
	_, err := it.Current()
	var oor *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oor)

	it.Rewind()
	assert.True(t, it.Valid())
	assert.Equal(t, 0, it.Key())
	v, err := it.Current()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestIterator_Empty(t *testing.T) {
	assert.False(t, New(0).Iterator().Valid())
}

func TestAll(t *testing.T) {
	bits := FromString("11101")

	got := make(map[int]bool)
	for i, v := range bits.All() {
		got[i] = v
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: false, 4: true}, got)

	var first []int
	for i := range bits.All() {
		if i == 2 {
			break
		}
		first = append(first, i)
	}
	assert.Equal(t, []int{0, 1}, first)
}

func TestValues(t *testing.T) {
	bits := FromString("0110")

	assert.True(t, FromSeq(bits.Values()).Equal(bits))
}
