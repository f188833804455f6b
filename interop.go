package bitarray

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitarray/internal/bitutil"
	"github.com/hupe1980/bitarray/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the indices of the set bits.
// It fails if an index does not fit in uint32.
func (b *BitArray) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	err := b.eachSet(func(i int) error {
		x, err := conv.IndexToUint32(i)
		if err != nil {
			return err
		}
		rb.Add(x)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("convert to roaring bitmap: %w", err)
	}
	return rb, nil
}

// FromRoaring creates a bit array of the given size with the bits listed in
// rb set. An index >= size yields *ErrIndexOutOfRange.
func FromRoaring(size int, rb *roaring.Bitmap) (*BitArray, error) {
	out := New(size)
	it := rb.Iterator()
	for it.HasNext() {
		i, err := conv.Uint32ToIndex(it.Next())
		if err != nil {
			return nil, err
		}
		if err := out.Set(i, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ToBitSet returns a bitset of length Size with the same bits set.
func (b *BitArray) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(b.size))
	_ = b.eachSet(func(i int) error {
		bs.Set(uint(i))
		return nil
	})
	return bs
}

// FromBitSet creates a bit array of size bs.Len() with the same bits set.
func FromBitSet(bs *bitset.BitSet) (*BitArray, error) {
	size, err := conv.UintToSize(bs.Len())
	if err != nil {
		return nil, err
	}
	out := New(size)
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if i >= bs.Len() {
			break
		}
		bitutil.Put(out.data, int(i), true)
	}
	return out, nil
}

// eachSet calls fn with the index of every set bit in ascending order,
// skipping empty bytes.
func (b *BitArray) eachSet(fn func(i int) error) error {
	for idx, v := range b.data {
		for v != 0 {
			bit := bits.TrailingZeros8(v)
			if err := fn(idx<<3 + bit); err != nil {
				return err
			}
			v &= v - 1
		}
	}
	return nil
}
