package bitarray

import (
	"math"

	"github.com/hupe1980/bitarray/internal/bitutil"
)

// ToEnd selects every remaining bit when passed as a length to Copy or
// FromSlice.
const ToEnd = math.MinInt

// DirectCopy copies length bits of src starting at offset into b starting
// at dest. src may be b itself; overlapping regions are copied as if through
// an intermediate buffer.
//
// Every touched index must be valid in its array, otherwise
// *ErrIndexOutOfRange is returned and b is left unchanged.
// A length <= 0 copies nothing.
func (b *BitArray) DirectCopy(src *BitArray, dest, offset, length int) error {
	if length <= 0 {
		return nil
	}
	if dest < 0 {
		return outOfRange(dest, b.size)
	}
	if dest > b.size-length {
		return outOfRange(dest+length-1, b.size)
	}
	if offset < 0 {
		return outOfRange(offset, src.size)
	}
	if offset > src.size-length {
		return outOfRange(offset+length-1, src.size)
	}

	if dest&7 == 0 && offset&7 == 0 {
		copyAligned(b.data, src.data, dest, offset, length)
		return nil
	}
	copyBits(b.data, src.data, dest, offset, length)
	return nil
}

// Copy is the clamping form of DirectCopy. Negative dest and offset count
// from the end of their array, ToEnd copies the rest of src, and a negative
// length stops that many bits before the end of src. The region is then cut
// to fit both arrays, so Copy never fails. It returns b.
func (b *BitArray) Copy(src *BitArray, dest, offset, length int) *BitArray {
	dest = clampOffset(dest, b.size)
	offset = clampOffset(offset, src.size)
	length = clampLength(length, offset, src.size)
	if avail := b.size - dest; length > avail {
		length = avail
	}
	// Clamped bounds always satisfy DirectCopy.
	_ = b.DirectCopy(src, dest, offset, length)
	return b
}

// FromSlice creates a bit array from a range of src.
//
// A negative offset starts that far from the end of src. Pass ToEnd as size
// to take everything after offset; a negative size stops that many bits
// before the end of src. Out of range values are clamped, so the result may
// be empty but FromSlice never fails.
func FromSlice(src *BitArray, offset, size int) *BitArray {
	offset = clampOffset(offset, src.size)
	size = clampLength(size, offset, src.size)

	slice := New(size)
	_ = slice.DirectCopy(src, 0, offset, size)
	return slice
}

// FromConcat creates a bit array holding the bits of a followed by the bits of b.
func FromConcat(a, b *BitArray) *BitArray {
	concat := New(a.size + b.size)
	_ = concat.DirectCopy(a, 0, 0, a.size)
	_ = concat.DirectCopy(b, a.size, 0, b.size)
	return concat
}

func clampOffset(offset, size int) int {
	if offset < 0 {
		offset += size
		if offset < 0 {
			return 0
		}
		return offset
	}
	if offset > size {
		return size
	}
	return offset
}

func clampLength(length, offset, size int) int {
	remaining := size - offset
	switch {
	case length == ToEnd:
		return remaining
	case length < 0:
		length = size + length - offset
		if length < 0 {
			return 0
		}
		return length
	case length > remaining:
		return remaining
	default:
		return length
	}
}

// copyAligned copies whole bytes with the builtin copy, which handles
// overlap, and moves the trailing bits one at a time. The trailing bits are
// ordered so that neither step overwrites source bits the other still needs.
func copyAligned(dst, src []byte, dest, offset, length int) {
	n := length >> 3
	db, sb := dest>>3, offset>>3
	tail := n << 3

	if dest < offset {
		copy(dst[db:db+n], src[sb:sb+n])
		copyBits(dst, src, dest+tail, offset+tail, length-tail)
		return
	}
	copyBits(dst, src, dest+tail, offset+tail, length-tail)
	copy(dst[db:db+n], src[sb:sb+n])
}

// copyBits runs forward when the destination starts before the source and
// backward otherwise.
func copyBits(dst, src []byte, dest, offset, length int) {
	if dest < offset {
		for i := 0; i < length; i++ {
			bitutil.Put(dst, dest+i, bitutil.Get(src, offset+i))
		}
		return
	}
	for i := length - 1; i >= 0; i-- {
		bitutil.Put(dst, dest+i, bitutil.Get(src, offset+i))
	}
}
