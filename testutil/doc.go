// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BitString(37)        // "0110..."
//	v := rng.Bools(37)            // []bool
//	n := rng.Size(64)             // [0, 64]
package testutil
