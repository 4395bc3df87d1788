// Package dataset reads and writes long-form set cover datasets.
//
// A dataset is a CSV table with one row per (set, element) membership, the
// same shape a dataframe would hold:
//
//	set,element
//	0,17
//	0,4
//	1,17
//
// Files whose names end in .zst/.zstd or .lz4 are transparently compressed.
// Load and Save move datasets through any blobstore.Store, and GenerateFile
// writes a seeded synthetic dataset next to a .sig file so repeated runs with
// the same parameters reuse the existing data.
package dataset
