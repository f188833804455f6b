package bitarray

// Shift returns a new bit array with the bits of b moved by amount positions.
// A positive amount moves bits toward higher indices, a negative amount toward
// lower ones. With circular set, bits leaving one end re-enter at the other;
// otherwise they are dropped and the vacated positions are cleared.
func (b *BitArray) Shift(amount int, circular bool) *BitArray {
	if circular {
		return b.rotate(amount)
	}
	return b.ShiftFill(amount, false)
}

// ShiftFill returns a linear shift of b whose vacated positions are set to fill.
func (b *BitArray) ShiftFill(amount int, fill bool) *BitArray {
	shifted := New(b.size)
	if fill {
		shifted.ApplyComplement()
	}

	n := b.size
	switch {
	case amount >= n || amount <= -n:
		// Every bit falls off.
	case amount >= 0:
		_ = shifted.DirectCopy(b, amount, 0, n-amount)
	default:
		_ = shifted.DirectCopy(b, 0, -amount, n+amount)
	}
	return shifted
}

func (b *BitArray) rotate(amount int) *BitArray {
	rotated := New(b.size)
	n := b.size
	if n == 0 {
		return rotated
	}

	k := amount % n
	if k < 0 {
		k += n
	}
	_ = rotated.DirectCopy(b, k, 0, n-k)
	_ = rotated.DirectCopy(b, 0, n-k, k)
	return rotated
}
