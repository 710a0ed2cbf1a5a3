package bitflag

import (
	"iter"
	"time"

	"github.com/hupe1980/bitflag/internal/layout"
	"github.com/hupe1980/bitflag/internal/migrate"
)

// WordBits is the number of bits in one storage word.
const WordBits = layout.WordBits

// Array is a growable sequence of W-bit unsigned fields packed into 32-bit words.
//
// Storage grows lazily: touching index i through any accessor materializes zero
// words up to the one holding i. Values wider than the field are silently
// truncated to the low W bits.
//
// Array is not safe for concurrent use, not even for concurrent Gets, because
// reads may grow storage. Use Synchronized when sharing an Array.
type Array struct {
	words   []uint32
	layout  layout.Layout
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Array with the given field width.
// The width must be one of 1, 2, 4, 8, 16 or 32.
func New(width int, optFns ...Option) (*Array, error) {
	l, err := layout.New(width)
	if err != nil {
		return nil, translateError(err, 0)
	}

	opts := applyOptions(optFns)

	a := &Array{
		layout:  l,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
	if opts.capacity > 0 {
		a.words = make([]uint32, 0, opts.capacity)
	}

	return a, nil
}

// Width returns the current field width in bits.
func (a *Array) Width() int { return a.layout.Width }

// FieldsPerWord returns WordBits / Width.
func (a *Array) FieldsPerWord() int { return a.layout.FieldsPerWord }

// FieldMask returns (1 << Width) - 1.
func (a *Array) FieldMask() uint32 { return a.layout.Mask }

// Words returns the number of materialized storage words.
func (a *Array) Words() int { return len(a.words) }

// Len returns the number of materialized field slots.
func (a *Array) Len() int { return a.layout.Capacity(len(a.words)) }

// BitOffset returns the bit offset of field i within its word.
func (a *Array) BitOffset(i int) (uint, error) {
	_, shift, err := a.layout.Locate(i)
	if err != nil {
		return 0, translateError(err, i)
	}
	return shift, nil
}

// FieldMaskAt returns the in-word mask covering field i.
func (a *Array) FieldMaskAt(i int) (uint32, error) {
	if _, _, err := a.layout.Locate(i); err != nil {
		return 0, translateError(err, i)
	}
	return a.layout.FieldMaskAt(i), nil
}

// Get returns the value of field i, growing storage if i is not yet materialized.
func (a *Array) Get(i int) (uint32, error) {
	w, shift, err := a.locate(i)
	if err != nil {
		return 0, err
	}
	return (a.words[w] >> shift) & a.layout.Mask, nil
}

// Set overwrites field i with v truncated to the field width.
func (a *Array) Set(i int, v uint32) error {
	w, shift, err := a.locate(i)
	if err != nil {
		return err
	}
	a.words[w] = (a.words[w] &^ (a.layout.Mask << shift)) | (a.layout.Truncate(v) << shift)
	return nil
}

// Or bitwise-ORs v into field i.
func (a *Array) Or(i int, v uint32) error {
	w, shift, err := a.locate(i)
	if err != nil {
		return err
	}
	a.words[w] |= a.layout.Truncate(v) << shift
	return nil
}

// And bitwise-ANDs field i with v. Bits outside the field are preserved.
func (a *Array) And(i int, v uint32) error {
	w, shift, err := a.locate(i)
	if err != nil {
		return err
	}
	a.words[w] &= (a.layout.Truncate(v) << shift) | ^(a.layout.Mask << shift)
	return nil
}

// Clear sets field i to zero.
func (a *Array) Clear(i int) error {
	w, shift, err := a.locate(i)
	if err != nil {
		return err
	}
	a.words[w] &^= a.layout.Mask << shift
	return nil
}

// Toggle bitwise-XORs v into field i.
func (a *Array) Toggle(i int, v uint32) error {
	w, shift, err := a.locate(i)
	if err != nil {
		return err
	}
	a.words[w] ^= a.layout.Truncate(v) << shift
	return nil
}

// ClearAll discards all storage. The width is unchanged.
func (a *Array) ClearAll() {
	n := len(a.words)
	a.words = nil

	a.logger.LogClearAll(n)
	a.metrics.RecordClearAll(n)
}

// SetWidth changes the field width and migrates every materialized field.
//
// Each field keeps its logical index; its value is truncated to the new width.
// On error the array is left unchanged.
func (a *Array) SetWidth(width int) error {
	from := a.layout

	to, err := layout.New(width)
	if err != nil {
		err = translateError(err, 0)
		a.logger.LogWidthChange(from.Width, width, len(a.words), err)
		a.metrics.RecordMigration(from.Width, width, 0, 0, err)
		return err
	}

	start := time.Now()
	fields := from.Capacity(len(a.words))

	words := migrate.Reflow(a.words, from, to)
	a.words, a.layout = words, to

	a.logger.LogWidthChange(from.Width, to.Width, len(words), nil)
	a.metrics.RecordMigration(from.Width, to.Width, fields, time.Since(start), nil)

	return nil
}

// RawWord returns storage word wordIndex, or 0 if it is not materialized.
// It never grows storage.
func (a *Array) RawWord(wordIndex int) uint32 {
	if wordIndex < 0 || wordIndex >= len(a.words) {
		return 0
	}
	return a.words[wordIndex]
}

// All iterates over every materialized field slot in index order.
// It never grows storage. The Array must not be modified during iteration.
func (a *Array) All() iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		for i := range a.Len() {
			if !yield(i, a.layout.Decode(a.words, i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy sharing the logger and metrics collector.
func (a *Array) Clone() *Array {
	c := *a
	if a.words != nil {
		c.words = append(make([]uint32, 0, len(a.words)), a.words...)
	}
	return &c
}

// locate validates i and ensures the word holding it exists.
func (a *Array) locate(i int) (int, uint, error) {
	w, shift, err := a.layout.Locate(i)
	if err != nil {
		return 0, 0, translateError(err, i)
	}

	if n := len(a.words); w >= n {
		a.words = layout.Grow(a.words, w)
		a.metrics.RecordGrowth(len(a.words) - n)
	}

	return w, shift, nil
}
