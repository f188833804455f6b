package bitarray

import "github.com/hupe1980/bitarray/internal/bitutil"

// ApplyComplement flips every bit in place and returns b.
func (b *BitArray) ApplyComplement() *BitArray {
	for i := range b.data {
		b.data[i] = ^b.data[i]
	}
	bitutil.ClearTail(b.data, b.size)
	return b
}

// ApplyOr sets b to b OR other and returns b.
func (b *BitArray) ApplyOr(other *BitArray) (*BitArray, error) {
	if err := b.checkSize(other); err != nil {
		return nil, err
	}
	for i := range b.data {
		b.data[i] |= other.data[i]
	}
	return b, nil
}

// ApplyAnd sets b to b AND other and returns b.
func (b *BitArray) ApplyAnd(other *BitArray) (*BitArray, error) {
	if err := b.checkSize(other); err != nil {
		return nil, err
	}
	for i := range b.data {
		b.data[i] &= other.data[i]
	}
	return b, nil
}

// ApplyXor sets b to b XOR other and returns b.
func (b *BitArray) ApplyXor(other *BitArray) (*BitArray, error) {
	if err := b.checkSize(other); err != nil {
		return nil, err
	}
	for i := range b.data {
		b.data[i] ^= other.data[i]
	}
	return b, nil
}

// OR, AND and XOR map 0,0 to 0, so operands with clear tails keep them clear.
func (b *BitArray) checkSize(other *BitArray) error {
	if b.size != other.size {
		return &ErrSizeMismatch{Expected: b.size, Actual: other.size}
	}
	return nil
}
