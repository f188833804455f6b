// Package bitarray provides a fixed-size, packed array of bits.
//
// A BitArray stores booleans eight to a byte, least significant bit first,
// and keeps its size for its whole lifetime. It supports indexed access,
// in-place boolean algebra, slicing, concatenation, shifting, iteration and
// JSON serialization.
//
// # Quick Start
//
//	bits := bitarray.FromString("10010")
//	bits.ApplyComplement()                 // 01101
//	mask := bitarray.FromBools([]bool{true, false, false, false, true})
//	if _, err := bits.ApplyXor(mask); err != nil {
//	    log.Fatal(err)
//	}
//	_ = bits.Set(4, true)                  // 11101
//	data, _ := json.Marshal(bits)          // [true,true,true,false,true]
//
// # Construction
//
//   - New(size): all bits cleared
//   - FromString: '0' is a cleared bit, any other byte a set bit
//   - FromBools, FromSeq, FromValues, FromJSON: one bit per element
//   - FromUint: binary representation, most significant bit first
//   - FromSlice, FromConcat: built from other arrays
//   - FromRoaring, FromBitSet: interop with roaring bitmaps and bitsets
//
// # Errors
//
// Strict operations return typed errors that can be matched with errors.As:
// *ErrIndexOutOfRange, *ErrSizeMismatch and *ErrDomain. Unset always returns
// ErrUnsupportedOperation and Property returns ErrUndefinedProperty for
// unknown names. FromJSON wraps ErrInvalidJSON for malformed input and
// ErrNotArray for null. Copy and FromSlice clamp their arguments instead of
// failing.
//
// # Concurrency
//
// A BitArray has no internal locking. Reads may run concurrently as long as
// nothing mutates the array; Clone it before handing it to another goroutine
// that might write.
package bitarray
