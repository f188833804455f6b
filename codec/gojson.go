package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes with github.com/goccy/go-json. The values passed in never
// escape, so the no-escape entry points are safe to use.
type GoJSON struct{}

// Marshal encodes the value to JSON without escaping v to the heap.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.MarshalNoEscape(v) }

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.UnmarshalNoEscape(data, v) }

// Valid reports whether data is well-formed JSON.
func (GoJSON) Valid(data []byte) bool { return gojson.Valid(data) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
