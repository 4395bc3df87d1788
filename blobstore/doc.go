// Package blobstore provides storage abstraction for setcover datasets.
//
// A Store reads and writes whole named objects. Datasets are loaded with
// Open and written (together with their signature files) with Put.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem rooted at a directory
//   - MemoryStore: In-memory, for tests
//   - s3.Store: Amazon S3 (and S3-compatible endpoints)
//   - minio.Store: MinIO via the native MinIO client
//
// # Custom Implementations
//
//	type Store interface {
//	    Open(ctx, name) (io.ReadCloser, error)
//	    Put(ctx, name, data) error
//	}
package blobstore
