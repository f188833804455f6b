package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperation is returned by Unset. A bit array has a fixed
	// size, so positions cannot be removed.
	ErrUnsupportedOperation = errors.New("values cannot be unset")

	// ErrUndefinedProperty is returned by Property for unknown names.
	ErrUndefinedProperty = errors.New("undefined property")

	// ErrInvalidJSON is returned by FromJSON for input that is not
	// well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotArray is returned by FromJSON for a JSON null.
	ErrNotArray = errors.New("JSON value is not an array")
)

// ErrIndexOutOfRange indicates an index outside [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Size)
}

// ErrSizeMismatch indicates a bitwise operation between arrays of different sizes.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrDomain indicates a value that cannot be represented in the requested width.
type ErrDomain struct {
	Width int
	Value uint64
}

func (e *ErrDomain) Error() string {
	if e.Width < 0 {
		return fmt.Sprintf("invalid bit width: %d", e.Width)
	}
	return fmt.Sprintf("value %d does not fit in %d bits", e.Value, e.Width)
}

func outOfRange(index, size int) error {
	return &ErrIndexOutOfRange{Index: index, Size: size}
}
