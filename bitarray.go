package bitarray

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hupe1980/bitarray/internal/bitutil"
)

// BitArray is a fixed-size array of bits packed eight to a byte.
//
// Bit i is stored in byte i/8 at position i%8, least significant bit first.
// The size never changes after construction. A BitArray is not safe for
// concurrent mutation; concurrent reads of an array nobody writes to are fine.
type BitArray struct {
	data []byte
	size int
}

// New creates a bit array of the given size with every bit cleared.
// It panics if size is negative.
func New(size int) *BitArray {
	if size < 0 {
		panic(fmt.Sprintf("bitarray: negative size %d", size))
	}
	return &BitArray{
		data: make([]byte, bitutil.ByteLen(size)),
		size: size,
	}
}

// Clone returns a deep copy of b.
func (b *BitArray) Clone() *BitArray {
	return &BitArray{
		data: bytes.Clone(b.data),
		size: b.size,
	}
}

// Size returns the number of bits.
func (b *BitArray) Size() int {
	return b.size
}

// Len is an alias for Size.
func (b *BitArray) Len() int {
	return b.size
}

// Count returns the number of bits set to true.
func (b *BitArray) Count() int {
	return bitutil.Count(b.data)
}

// Property returns the derived value registered under name.
// Only "size" and "count" are defined.
func (b *BitArray) Property(name string) (int, error) {
	switch name {
	case "size":
		return b.size, nil
	case "count":
		return b.Count(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUndefinedProperty, name)
	}
}

// Exists reports whether i is a valid index.
func (b *BitArray) Exists(i int) bool {
	return i >= 0 && i < b.size
}

// Get returns the bit at index i.
func (b *BitArray) Get(i int) (bool, error) {
	if !b.Exists(i) {
		return false, outOfRange(i, b.size)
	}
	return bitutil.Get(b.data, i), nil
}

// Set sets the bit at index i to v.
func (b *BitArray) Set(i int, v bool) error {
	if !b.Exists(i) {
		return outOfRange(i, b.size)
	}
	bitutil.Put(b.data, i, v)
	return nil
}

// Unset always fails with ErrUnsupportedOperation.
func (b *BitArray) Unset(int) error {
	return ErrUnsupportedOperation
}

// Bools returns the bits as a slice in index order.
func (b *BitArray) Bools() []bool {
	out := make([]bool, b.size)
	for i := range out {
		out[i] = bitutil.Get(b.data, i)
	}
	return out
}

// String renders the bits as '0' and '1' characters, index 0 first.
func (b *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if bitutil.Get(b.data, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Bytes returns a copy of the packed buffer.
func (b *BitArray) Bytes() []byte {
	return bytes.Clone(b.data)
}

// Equal reports whether b and other have the same size and bits.
func (b *BitArray) Equal(other *BitArray) bool {
	if other == nil {
		return false
	}
	return b.size == other.size && bytes.Equal(b.data, other.data)
}
