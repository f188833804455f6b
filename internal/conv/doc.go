// Package conv provides checked integer conversions for the interop layer.
//
// Roaring bitmaps address bits with uint32 and bitsets with uint, while bit
// arrays use int. These helpers reject values that would wrap instead of
// silently truncating them.
//
// Conversions that are safe by construction (a non-negative size to uint,
// for example) use plain casts.
package conv
