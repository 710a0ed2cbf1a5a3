// Package bitflag provides a packed array of small unsigned fields whose bit
// width can change at runtime.
//
// An Array stores an unbounded sequence of W-bit fields densely packed into
// 32-bit words. W is one of 1, 2, 4, 8, 16 or 32 and can be changed with
// SetWidth; every stored field is then re-encoded into the new layout at the
// same logical index.
//
// # Quick Start
//
//	arr, _ := bitflag.New(4)
//	arr.Set(0, 7)
//	arr.Or(1, 0b0011)
//	v, _ := arr.Get(0) // 7
//
// # Layout
//
// Field i lives in word i/FieldsPerWord at bit offset (i%FieldsPerWord)*W:
//
//	W=8   word 0: [ f3 | f2 | f1 | f0 ]   word 1: [ f7 | f6 | f5 | f4 ]
//
// Storage grows lazily. Get, Set, Or, And, Clear and Toggle all materialize
// zero words up to the word holding their index, so reading an unset index
// returns 0 and allocates. RawWord, All and NonZero never grow storage.
//
// # Truncation
//
// Values wider than W bits are masked to their low W bits on write; this is not
// an error:
//
//	arr, _ := bitflag.New(4)
//	arr.Set(0, 200) // stores 200 & 0xF = 8
//
// # Width Changes
//
// SetWidth visits every field slot in the current storage in index order and
// truncates each value to the new width. Widening is lossless; narrowing drops
// high bits:
//
//	arr, _ := bitflag.New(8)
//	arr.Set(1, 200)
//	arr.SetWidth(4)
//	v, _ := arr.Get(1) // 8
//
// An invalid width leaves the array untouched.
//
// # Errors
//
// Invalid widths fail with *ErrInvalidWidth and negative indices with
// *ErrInvalidIndex. Failed calls have no side effects.
//
// # Concurrency
//
// Array is not safe for concurrent use; even Get mutates storage. Synchronized
// wraps an Array behind a single mutex.
package bitflag
