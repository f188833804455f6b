package bitarray

import (
	"encoding/json"
	"fmt"
)

// Indexed is the indexed access contract: bounded reads and writes, an
// existence check, and a removal operation that is always rejected.
type Indexed interface {
	Get(i int) (bool, error)
	Set(i int, v bool) error
	Exists(i int) bool
	Unset(i int) error
}

// Counted reports the number of set bits.
type Counted interface {
	Count() int
}

// Iterable produces a restartable cursor.
type Iterable interface {
	Iterator() *Iterator
}

var (
	_ Indexed          = (*BitArray)(nil)
	_ Counted          = (*BitArray)(nil)
	_ Iterable         = (*BitArray)(nil)
	_ json.Marshaler   = (*BitArray)(nil)
	_ json.Unmarshaler = (*BitArray)(nil)
	_ fmt.Stringer     = (*BitArray)(nil)
)
