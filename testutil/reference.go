package testutil

import (
	"maps"
	"slices"
)

// Reference is an unpacked model of a packed field array.
//
// Every field is held in its own map entry, so there is no bit arithmetic to
// get wrong. Indices that were never written read as zero.
type Reference struct {
	width  int
	mask   uint32
	fields map[int]uint32
}

// NewReference creates an empty model for the given field width.
func NewReference(width int) *Reference {
	r := &Reference{fields: make(map[int]uint32)}
	r.SetWidth(width)
	return r
}

// Width returns the current field width.
func (r *Reference) Width() int { return r.width }

// Get returns the value of field i.
func (r *Reference) Get(i int) uint32 { return r.fields[i] }

// Set overwrites field i.
func (r *Reference) Set(i int, v uint32) { r.put(i, v&r.mask) }

// Or ORs v into field i.
func (r *Reference) Or(i int, v uint32) { r.put(i, r.fields[i]|(v&r.mask)) }

// And ANDs field i with v.
func (r *Reference) And(i int, v uint32) { r.put(i, r.fields[i]&(v&r.mask)) }

// Toggle XORs v into field i.
func (r *Reference) Toggle(i int, v uint32) { r.put(i, r.fields[i]^(v&r.mask)) }

// Clear zeroes field i.
func (r *Reference) Clear(i int) { delete(r.fields, i) }

// ClearAll zeroes every field.
func (r *Reference) ClearAll() { clear(r.fields) }

// SetWidth changes the width and truncates every stored value to it.
func (r *Reference) SetWidth(width int) {
	r.width = width
	r.mask = uint32((uint64(1) << width) - 1)
	for i, v := range r.fields {
		r.put(i, v&r.mask)
	}
}

// NonZero returns the indices of all non-zero fields in increasing order.
func (r *Reference) NonZero() []int {
	return slices.Sorted(maps.Keys(r.fields))
}

func (r *Reference) put(i int, v uint32) {
	if v == 0 {
		delete(r.fields, i)
		return
	}
	r.fields[i] = v
}
