// Package migrate re-encodes packed fields from one width to another.
package migrate

import "github.com/hupe1980/bitflag/internal/layout"

// Reflow decodes every field slot of old under from and encodes it under to.
//
// Slots are visited in increasing logical index order; the number of slots is
// len(old) * from.FieldsPerWord. Each value is truncated to to.Width bits, so
// narrowing drops high bits and widening never invents any. old is not modified.
func Reflow(old []uint32, from, to layout.Layout) []uint32 {
	total := from.Capacity(len(old))
	if total == 0 {
		return nil
	}

	// Exact size of the result; growth below never reallocates.
	words := make([]uint32, 0, (total+to.FieldsPerWord-1)/to.FieldsPerWord)

	for i := range total {
		v := to.Truncate(from.Decode(old, i))

		w := to.WordIndex(i)
		words = layout.Grow(words, w)
		words[w] |= v << to.BitOffset(i)
	}

	return words
}
