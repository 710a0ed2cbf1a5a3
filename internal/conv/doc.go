// Package conv provides checked conversions between field indices and the
// uint32 members of Roaring bitmaps.
//
// Field indices are ints and unbounded; bitmap members are uint32. Conversions
// that can overflow return an error instead of wrapping.
package conv
