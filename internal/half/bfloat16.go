package half

import "math"

// BFloat16Bits is the raw bfloat16 bit-pattern: the top half of a float32.
//
// Layout:
//
//	sign: 1 bit
//	exp:  8 bits (bias 127)
//	frac: 7 bits
type BFloat16Bits uint16

// IsNaN reports whether b encodes a NaN.
func (b BFloat16Bits) IsNaN() bool {
	return b&0x7F80 == 0x7F80 && b&0x007F != 0
}

// BFloat16ToFloat32 widens a bfloat16 bit-pattern to float32 by zero-filling
// the low 16 mantissa bits.
func BFloat16ToFloat32(b BFloat16Bits) float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// BFloat16FromFloat32 narrows a float32 to bfloat16 with round to nearest,
// ties to even, applied at bit 15. Finite values that round past the largest
// bfloat16 become ±Inf; NaN stays a quiet NaN.
func BFloat16FromFloat32(f float32) BFloat16Bits {
	bits := math.Float32bits(f)
	if bits&f32ExpMask == f32ExpMask && bits&f32FracMask != 0 {
		// Rounding could carry a NaN payload into the exponent.
		return BFloat16Bits(bits>>16) | 0x0040
	}
	lsb := (bits >> 16) & 1
	bits += 0x7FFF + lsb
	return BFloat16Bits(bits >> 16)
}
