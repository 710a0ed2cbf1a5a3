package layout

import (
	"errors"
	"fmt"
	"math/bits"
)

// WordBits is the number of bits per storage word.
const WordBits = 32

// ErrNegativeIndex is returned when a logical index is negative.
var ErrNegativeIndex = errors.New("negative field index")

// ErrInvalidWidth indicates a width that is not a power of two in [1, WordBits].
type ErrInvalidWidth struct {
	Width int
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid field width %d: must be a power of two in [1, %d]", e.Width, WordBits)
}

// Layout holds the per-width constants of a packed field array.
type Layout struct {
	Width         int
	FieldsPerWord int
	Mask          uint32
}

// ValidWidth reports whether w is one of 1, 2, 4, ..., WordBits.
func ValidWidth(w int) bool {
	return w > 0 && w <= WordBits && bits.OnesCount(uint(w)) == 1
}

// New derives the layout for width w.
func New(w int) (Layout, error) {
	if !ValidWidth(w) {
		return Layout{}, &ErrInvalidWidth{Width: w}
	}

	return Layout{
		Width:         w,
		FieldsPerWord: WordBits / w,
		Mask:          uint32((uint64(1) << w) - 1),
	}, nil
}

// MustNew is like New but panics on an invalid width.
func MustNew(w int) Layout {
	l, err := New(w)
	if err != nil {
		panic(err)
	}
	return l
}

// WordIndex returns the index of the word holding field i.
func (l Layout) WordIndex(i int) int {
	return i / l.FieldsPerWord
}

// BitOffset returns the bit offset of field i inside its word.
func (l Layout) BitOffset(i int) uint {
	return uint((i % l.FieldsPerWord) * l.Width) //nolint:gosec // i >= 0 is checked by callers
}

// FieldMaskAt returns Mask shifted to the position of field i.
func (l Layout) FieldMaskAt(i int) uint32 {
	return l.Mask << l.BitOffset(i)
}

// Locate returns the storage coordinates of field i.
func (l Layout) Locate(i int) (int, uint, error) {
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrNegativeIndex, i)
	}
	return l.WordIndex(i), l.BitOffset(i), nil
}

// Truncate drops every bit of v above the field width.
func (l Layout) Truncate(v uint32) uint32 {
	return v & l.Mask
}

// Capacity returns the number of field slots held by the given word count.
func (l Layout) Capacity(words int) int {
	return words * l.FieldsPerWord
}

// Decode extracts field i from words. Fields beyond the slice read as zero.
func (l Layout) Decode(words []uint32, i int) uint32 {
	w := l.WordIndex(i)
	if w >= len(words) {
		return 0
	}
	return (words[w] >> l.BitOffset(i)) & l.Mask
}

// Grow appends zero words until wordIndex is addressable.
func Grow(words []uint32, wordIndex int) []uint32 {
	if wordIndex < len(words) {
		return words
	}
	return append(words, make([]uint32, wordIndex+1-len(words))...)
}
