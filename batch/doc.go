// Package batch stores encoded half-precision vectors as a single
// self-describing blob.
//
// A blob starts with a fixed 24-byte little-endian header followed by the
// (optionally compressed) body:
//
//	offset size field
//	0      4    magic "HVB1"
//	4      1    version (1)
//	5      1    halfvec.Format
//	6      1    codec ID (codec.IDNone, codec.IDLZ4, codec.IDZstd)
//	7      1    reserved, zero
//	8      4    dimension
//	12     4    count
//	16     4    raw body length
//	20     4    CRC32C of the raw body
//
// The raw body is count int64 IDs followed by count vectors of
// 2*dimension bytes each. When the chosen codec does not shrink the body,
// it is stored uncompressed and the header records codec.IDNone.
//
// # Usage
//
//	b, err := batch.NewBatch(halfvec.Float16, vectors, nil)
//	if err != nil {
//	    return err
//	}
//	if err := batch.Save(ctx, store, "fp16.hvb", b, codec.Default); err != nil {
//	    return err
//	}
//	loaded, err := batch.Load(ctx, store, "fp16.hvb")
package batch
