package bitarray

import "github.com/hupe1980/bitarray/codec"

type options struct {
	codec codec.Codec
}

// Option configures serialization helpers such as FromJSON and ToJSON.
type Option func(*options)

// WithCodec configures the codec used to encode and decode JSON.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func applyOptions(opts []Option) options {
	o := options{codec: codec.Default}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
