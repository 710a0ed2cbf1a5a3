// Package layout maps logical field indices onto packed 32-bit words.
//
// A Layout is derived from a field width W (a power of two dividing WordBits).
// Field i lives in word i/FieldsPerWord at bit offset (i%FieldsPerWord)*W:
//
//	W=8, FieldsPerWord=4
//	┌────────┬────────┬────────┬────────┐
//	│ i=3    │ i=2    │ i=1    │ i=0    │  word 0
//	│ 31..24 │ 23..16 │ 15..8  │ 7..0   │
//	└────────┴────────┴────────┴────────┘
//
// The mapping is a pure function of (i, W).
package layout
