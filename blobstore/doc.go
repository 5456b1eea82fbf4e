// Package blobstore provides storage for persisted vector batches.
//
// Store is the interface for reading and writing whole blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and ephemeral runs
//   - LocalStore: local filesystem with atomic writes
//   - RateLimitedStore: wraps any Store with a bytes/second budget
//   - minio.Store: MinIO and other S3-compatible services
//   - s3.Store: Amazon S3
package blobstore
