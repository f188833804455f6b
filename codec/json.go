package codec

import "encoding/json"

// JSON encodes with encoding/json.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Valid reports whether data is well-formed JSON.
func (JSON) Valid(data []byte) bool { return json.Valid(data) }

// Name returns "json".
func (JSON) Name() string { return "json" }
