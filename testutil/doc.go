// Package testutil provides testing utilities for setcover.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for generating random set collections and
// helpers for checking that a cover really covers its universe.
//
// # Random Set Collections
//
//	rng := testutil.NewRNG(seed)
//	sets := rng.Sets(500, 2000, 40)          // [][]int, may be infeasible
//	coll := rng.CoveringCollection(500, 2000, 40) // map[string][]int, always coverable
//
// # Coverage Checks
//
//	ok := testutil.Covers(coll, cover)
package testutil
