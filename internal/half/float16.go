package half

import "math"

// Float16Bits is the raw IEEE-754 binary16 bit-pattern.
//
// Layout:
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
type Float16Bits uint16

const (
	f16SignMask Float16Bits = 0x8000
	f16ExpMask  Float16Bits = 0x7C00
	f16FracMask Float16Bits = 0x03FF

	f32SignMask uint32 = 0x80000000
	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF
)

// MaxFloat16 is the largest finite binary16 value.
const MaxFloat16 = 65504

// IsNaN reports whether h encodes a NaN.
func (h Float16Bits) IsNaN() bool {
	return h&f16ExpMask == f16ExpMask && h&f16FracMask != 0
}

// IsInf reports whether h encodes an infinity of either sign.
func (h Float16Bits) IsInf() bool {
	return h&f16ExpMask == f16ExpMask && h&f16FracMask == 0
}

// Float16ToFloat32 widens a binary16 bit-pattern to float32. Every binary16
// value is exactly representable, so this never rounds.
func Float16ToFloat32(h Float16Bits) float32 {
	sign := uint32(h&f16SignMask) << 16
	exp := uint32(h&f16ExpMask) >> 10
	frac := uint32(h & f16FracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: exponent is -14 with no implicit leading 1. Shift until
		// the leading 1 lands on bit 10, then drop it.
		e := int32(-14)
		for frac&0x0400 == 0 {
			frac <<= 1
			e--
		}
		frac &= uint32(f16FracMask)
		return math.Float32frombits(sign | uint32(127+e)<<23 | frac<<13)
	case 0x1F:
		return math.Float32frombits(sign | f32ExpMask | frac<<13)
	default:
		return math.Float32frombits(sign | (exp+127-15)<<23 | frac<<13)
	}
}

// Float16FromFloat32 narrows a float32 to binary16.
//
// Values beyond ±65504 (after rounding) become ±Inf, values below the
// smallest subnormal (2^-24) become signed zero, NaN stays a quiet NaN.
func Float16FromFloat32(f float32) Float16Bits {
	bits := math.Float32bits(f)
	sign := Float16Bits((bits & f32SignMask) >> 16)
	exp := int32((bits & f32ExpMask) >> 23)
	frac := bits & f32FracMask

	if exp == 0xFF {
		if frac == 0 {
			return sign | f16ExpMask
		}
		payload := Float16Bits(frac>>13) | 0x0200
		return sign | f16ExpMask | payload&f16FracMask
	}

	// float32 subnormals are far below 2^-24.
	if exp == 0 {
		return sign
	}

	e16 := exp - 127 + 15
	if e16 >= 0x1F {
		return sign | f16ExpMask
	}

	if e16 <= 0 {
		if e16 < -10 {
			return sign
		}
		mant := frac | 0x00800000
		shift := uint32(14 - e16)
		m := mant >> shift
		rem := mant & (uint32(1)<<shift - 1)
		halfway := uint32(1) << (shift - 1)
		if rem > halfway || (rem == halfway && m&1 == 1) {
			// A carry into bit 10 yields the smallest normal, which is
			// exactly the right encoding.
			m++
		}
		return sign | Float16Bits(m)
	}

	m := frac >> 13
	rem := frac & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && m&1 == 1) {
		m++
		if m == 0x0400 {
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | f16ExpMask
			}
		}
	}

	return sign | Float16Bits(uint32(e16)<<10) | Float16Bits(m)
}
