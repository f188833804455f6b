package bitarray

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/bitarray/codec"
)

// FromJSON creates a bit array from a JSON array. Elements are converted with
// the same truth rules as FromValues, so [1, 0, "x", null] is "1010".
func FromJSON(data []byte, opts ...Option) (*BitArray, error) {
	o := applyOptions(opts)
	if !o.codec.Valid(data) {
		return nil, fmt.Errorf("decode bit array with %s: %w", o.codec.Name(), ErrInvalidJSON)
	}
	if isNull(data) {
		return nil, fmt.Errorf("decode bit array with %s: %w", o.codec.Name(), ErrNotArray)
	}

	var values []any
	if err := o.codec.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode bit array with %s: %w", o.codec.Name(), err)
	}
	return FromValues(values), nil
}

// ToJSON encodes b as a JSON array of booleans.
func (b *BitArray) ToJSON(opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return o.codec.Marshal(b.Bools())
}

// MarshalJSON implements json.Marshaler using codec.Default.
func (b *BitArray) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(b.Bools())
}

// UnmarshalJSON implements json.Unmarshaler. It replaces the contents and
// size of b. A JSON null leaves b unchanged.
func (b *BitArray) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	decoded, err := FromJSON(data)
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
