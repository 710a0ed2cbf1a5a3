package bitflag

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitflag/internal/conv"
)

// NonZero returns the set of logical indices whose field is non-zero.
//
// Only materialized words are scanned and storage is never grown. Whole zero
// words are skipped. It fails if a non-zero index does not fit in uint32.
func (a *Array) NonZero() (*roaring.Bitmap, error) {
	rb := roaring.New()
	fpw := a.layout.FieldsPerWord

	for w, word := range a.words {
		if word == 0 {
			continue
		}
		for k := range fpw {
			if (word>>(uint(k)*uint(a.layout.Width)))&a.layout.Mask == 0 {
				continue
			}
			id, err := conv.IntToUint32(w*fpw + k)
			if err != nil {
				return nil, err
			}
			rb.Add(id)
		}
	}

	return rb, nil
}

// OrEach ORs v into the field at every index contained in rb.
//
// Storage grows to cover the largest index in rb. An empty or nil bitmap is a
// no-op.
func (a *Array) OrEach(rb *roaring.Bitmap, v uint32) error {
	return a.each(rb, func(i int) error { return a.Or(i, v) })
}

// SetEach overwrites the field at every index contained in rb with v.
func (a *Array) SetEach(rb *roaring.Bitmap, v uint32) error {
	return a.each(rb, func(i int) error { return a.Set(i, v) })
}

func (a *Array) each(rb *roaring.Bitmap, fn func(i int) error) error {
	if rb == nil || rb.IsEmpty() {
		return nil
	}

	// Grow once up front instead of word by word.
	last, err := conv.Uint32ToInt(rb.Maximum())
	if err != nil {
		return err
	}
	if _, _, err := a.locate(last); err != nil {
		return err
	}

	it := rb.Iterator()
	for it.HasNext() {
		i, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return err
		}
		if err := fn(i); err != nil {
			return err
		}
	}

	return nil
}
