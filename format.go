package halfvec

import (
	"fmt"
	"strings"

	"github.com/hupe1980/halfvec/internal/half"
)

// Format selects the 16-bit layout used for every vector component.
type Format uint8

const (
	// Float16 is IEEE-754 binary16: 1 sign, 5 exponent (bias 15) and 10 mantissa bits.
	Float16 Format = iota + 1
	// BFloat16 keeps the float32 exponent (8 bits, bias 127) and 7 mantissa bits.
	BFloat16
)

// formatSpec is everything the codec needs to know about a layout.
type formatSpec struct {
	name      string
	tolerance float32
	put       func(dst []byte, src []float32)
	get       func(dst []float32, src []byte)
}

var formats = map[Format]formatSpec{
	Float16: {
		name:      "float16",
		tolerance: 0.001,
		put:       half.PutFloat16s,
		get:       half.Float16s,
	},
	BFloat16: {
		name:      "bfloat16",
		tolerance: 0.01,
		put:       half.PutBFloat16s,
		get:       half.BFloat16s,
	},
}

func (f Format) spec() (formatSpec, error) {
	s, ok := formats[f]
	if !ok {
		return formatSpec{}, &ErrUnsupportedFormat{Format: f}
	}
	return s, nil
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

// Tolerance returns the maximum absolute error accepted when comparing a
// decoded component with its original. It returns 0 for an unknown format.
func (f Format) Tolerance() float32 {
	return formats[f].tolerance
}

func (f Format) String() string {
	if s, ok := formats[f]; ok {
		return s.name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(f))
}

// ParseFormat returns the Format with the given name (case-insensitive).
// "fp16" and "bf16" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "float16", "fp16":
		return Float16, nil
	case "bfloat16", "bf16":
		return BFloat16, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, name)
	}
}
