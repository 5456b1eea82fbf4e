// Package half converts between float32 and the two 16-bit floating point
// layouts used for vector storage: IEEE-754 binary16 ("float16") and
// bfloat16.
//
// Both conversions round to nearest, ties to even. Packed slices are always
// little-endian, two bytes per element.
package half
