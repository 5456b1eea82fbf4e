package half

import "encoding/binary"

// PutFloat16s encodes src as binary16 into dst. dst must hold 2*len(src) bytes.
func PutFloat16s(dst []byte, src []float32) {
	for i, f := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float16FromFloat32(f)))
	}
}

// Float16s decodes packed binary16 values from src into dst.
// dst must have length >= len(src)/2.
func Float16s(dst []float32, src []byte) {
	for i := range len(src) / 2 {
		dst[i] = Float16ToFloat32(Float16Bits(binary.LittleEndian.Uint16(src[2*i:])))
	}
}

// PutBFloat16s encodes src as bfloat16 into dst. dst must hold 2*len(src) bytes.
func PutBFloat16s(dst []byte, src []float32) {
	for i, f := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(BFloat16FromFloat32(f)))
	}
}

// BFloat16s decodes packed bfloat16 values from src into dst.
// dst must have length >= len(src)/2.
func BFloat16s(dst []float32, src []byte) {
	for i := range len(src) / 2 {
		dst[i] = BFloat16ToFloat32(BFloat16Bits(binary.LittleEndian.Uint16(src[2*i:])))
	}
}
