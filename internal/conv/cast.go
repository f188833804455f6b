package conv

import (
	"fmt"
	"math"
)

// OverflowError reports a bit index or size that the target type cannot hold.
type OverflowError struct {
	Value  string
	Target string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %s cannot be converted to %s", e.Value, e.Target)
}

// IndexToUint32 converts a bit index to the uint32 key used by roaring bitmaps.
func IndexToUint32(i int) (uint32, error) {
	if i < 0 || uint64(i) > math.MaxUint32 {
		return 0, &OverflowError{Value: fmt.Sprint(i), Target: "uint32"}
	}
	return uint32(i), nil
}

// Uint32ToIndex converts a roaring key back to a bit index.
func Uint32ToIndex(v uint32) (int, error) {
	return UintToSize(uint(v))
}

// UintToSize converts an unsigned length, such as bitset.Len, to a size.
func UintToSize(v uint) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, &OverflowError{Value: fmt.Sprint(v), Target: "int"}
	}
	return int(v), nil
}
