package bitarray

import (
	"iter"

	"github.com/hupe1980/bitarray/internal/bitutil"
)

// Iterator walks the bits of a BitArray in index order.
//
//	for it := bits.Iterator(); it.Valid(); it.Next() {
//	    v, _ := it.Current()
//	    fmt.Println(it.Key(), v)
//	}
//
// An Iterator does not own the array and must not be shared between goroutines.
type Iterator struct {
	bits  *BitArray
	index int
}

// NewIterator returns an iterator positioned on the first bit of bits.
func NewIterator(bits *BitArray) *Iterator {
	it := &Iterator{bits: bits}
	it.Rewind()
	return it
}

// Iterator returns a new iterator over b.
func (b *BitArray) Iterator() *Iterator {
	return NewIterator(b)
}

// Rewind moves the iterator back to the first bit.
func (it *Iterator) Rewind() {
	it.index = 0
}

// Key returns the current index.
func (it *Iterator) Key() int {
	return it.index
}

// Current returns the bit at the current index. It fails with
// *ErrIndexOutOfRange once the iterator is exhausted.
func (it *Iterator) Current() (bool, error) {
	return it.bits.Get(it.index)
}

// Next advances to the following bit.
func (it *Iterator) Next() {
	it.index++
}

// Valid reports whether the current index addresses a bit.
func (it *Iterator) Valid() bool {
	return it.index < it.bits.size
}

// All returns a sequence of (index, bit) pairs for use with range.
func (b *BitArray) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, bitutil.Get(b.data, i)) {
				return
			}
		}
	}
}

// Values returns a sequence of the bits in index order.
func (b *BitArray) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(bitutil.Get(b.data, i)) {
				return
			}
		}
	}
}
