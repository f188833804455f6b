// Package bitutil holds the byte-level arithmetic behind bitarray.
//
// Layout:
//   - Bit i lives in byte i>>3 at bit position i&7 (least significant bit first)
//   - A store of n bits occupies ByteLen(n) bytes
//   - Bits at positions >= n in the last byte are always zero (the tail)
//
// Popcount uses a 256-entry lookup table indexed by byte value.
package bitutil
