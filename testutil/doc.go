// Package testutil provides testing utilities for bitflag.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for field values and a map-backed
// reference model to check packed arrays against.
//
// # Random Fields
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Fields(100, 4) // 100 values, each < 1<<4
//
// # Differential Testing
//
//	ref := testutil.NewReference(4)
//	ref.Set(10, 7)
//	ref.SetWidth(2)
//	ref.Get(10) // 3
package testutil
