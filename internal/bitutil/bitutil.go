package bitutil

// popcount holds the number of set bits of every byte value.
var popcount = [256]uint8{
	0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	4, 5, 5, 6, 5, 6, 6, 7, 5, 6, 6, 7, 6, 7, 7, 8,
}

// restrict maps size%8 to the mask of significant bits in the last byte.
// A remainder of 0 means the last byte is fully used.
var restrict = [8]byte{255, 1, 3, 7, 15, 31, 63, 127}

// ByteLen returns the number of bytes needed to hold n bits.
func ByteLen(n int) int {
	return (n + 7) >> 3
}

// Locate returns the byte index and the single-bit mask for bit i.
func Locate(i int) (int, byte) {
	return i >> 3, 1 << (uint(i) & 7)
}

// TailMask returns the mask of significant bits in the last byte of a
// store holding n bits.
func TailMask(n int) byte {
	return restrict[n&7]
}

// Popcount returns the number of set bits in b.
func Popcount(b byte) int {
	return int(popcount[b])
}

// Count returns the number of set bits across data.
func Count(data []byte) int {
	count := 0
	for _, b := range data {
		count += int(popcount[b])
	}
	return count
}

// Get reports whether bit i of data is set. The caller checks bounds.
func Get(data []byte, i int) bool {
	idx, mask := Locate(i)
	return data[idx]&mask != 0
}

// Put sets or clears bit i of data. The caller checks bounds.
func Put(data []byte, i int, v bool) {
	idx, mask := Locate(i)
	if v {
		data[idx] |= mask
	} else {
		data[idx] &^= mask
	}
}

// ClearTail zeroes the bits beyond n in the last byte of data.
func ClearTail(data []byte, n int) {
	if len(data) == 0 {
		return
	}
	data[len(data)-1] &= TailMask(n)
}
