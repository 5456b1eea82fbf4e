// Package s3 provides an Amazon S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("batches/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = batch.Save(ctx, store, "bf16.hvb", b, codec.Default)
//
// # Features
//
//   - CRC32C-checked single-request puts for small blobs
//   - Multipart uploads for large blobs
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
