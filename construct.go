package bitarray

import (
	"encoding/json"
	"iter"
	"reflect"

	"github.com/hupe1980/bitarray/internal/bitutil"
)

// FromString creates a bit array with one bit per byte of s. The byte '0'
// yields a cleared bit and every other byte, not only '1', a set bit.
func FromString(s string) *BitArray {
	bits := New(len(s))
	packInto(bits.data, len(s), func(i int) bool { return s[i] != '0' })
	return bits
}

// FromBools creates a bit array from a slice of booleans.
func FromBools(values []bool) *BitArray {
	bits := New(len(values))
	packInto(bits.data, len(values), func(i int) bool { return values[i] })
	return bits
}

// FromSeq creates a bit array from a finite sequence of booleans.
func FromSeq(seq iter.Seq[bool]) *BitArray {
	var values []bool
	for v := range seq {
		values = append(values, v)
	}
	return FromBools(values)
}

// FromValues creates a bit array from arbitrary values using their truth
// value. nil, false, numeric zero (json.Number included), "", "0" and empty
// slices, arrays and maps are false; everything else, a nil pointer aside,
// is true. Decoded JSON arrays are the usual input.
func FromValues(values []any) *BitArray {
	bits := New(len(values))
	packInto(bits.data, len(values), func(i int) bool { return truthy(values[i]) })
	return bits
}

// FromUint creates a bit array of size n holding the binary representation
// of value, most significant bit first and left padded with zeros.
// For example FromUint(5, 5) is "00101".
//
// It returns *ErrDomain if n is negative or value needs more than n bits.
func FromUint(n int, value uint64) (*BitArray, error) {
	if n < 0 || (n < 64 && value>>uint(n) != 0) {
		return nil, &ErrDomain{Width: n, Value: value}
	}

	bits := New(n)
	for j := 0; j < n && j < 64; j++ {
		if value>>uint(j)&1 == 1 {
			bitutil.Put(bits.data, n-1-j, true)
		}
	}
	return bits, nil
}

// packInto fills data a byte at a time from the first n values of bit.
func packInto(data []byte, n int, bit func(i int) bool) {
	var cur byte
	for i := 0; i < n; i++ {
		if bit(i) {
			cur |= 1 << (uint(i) & 7)
		}
		if i&7 == 7 {
			data[i>>3] = cur
			cur = 0
		}
	}
	if n&7 != 0 {
		data[n>>3] = cur
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	case float64:
		return x != 0
	case int:
		return x != 0
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f != 0
		}
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String() != "" && rv.String() != "0"
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
