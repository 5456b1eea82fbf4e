// Package halfvec encodes float32 vectors into packed 16-bit buffers and back.
//
// Two layouts are supported, selected by Format:
//
//   - Float16: IEEE-754 binary16 (1 sign, 5 exponent, 10 mantissa bits)
//   - BFloat16: the top half of a float32 (1 sign, 8 exponent, 7 mantissa bits)
//
// Both narrow with round to nearest, ties to even. An EncodedVector holds
// 2*D bytes for a D-dimensional vector, little-endian, in component order.
//
// # Quick Start
//
//	bufs, _ := halfvec.Encode(vectors, halfvec.Float16)
//	v, _ := halfvec.Decode(bufs[0], halfvec.Float16)
//	ok := halfvec.VectorsApproximatelyEqual(v, vectors[0], halfvec.Float16)
//
// For large batches use a Codec, which fans work out over goroutines and
// reports to a Logger and MetricsCollector:
//
//	c, _ := halfvec.New(halfvec.BFloat16, halfvec.WithConcurrency(8))
//	bufs, _ := c.Encode(vectors)
//
// # Tolerance
//
// Every Format carries the absolute error bound used by ApproximatelyEqual:
// 0.001 for Float16 and 0.01 for BFloat16. The bound holds for components in
// [-1, 1]; beyond that the spacing between representable values grows with
// magnitude.
//
// # Errors
//
// Failures are reported as *ErrInvalidDimension, *ErrMalformedBuffer and
// *ErrUnsupportedFormat. Each also matches its sentinel (ErrDimension,
// ErrMalformed, ErrFormat) under errors.Is.
package halfvec
