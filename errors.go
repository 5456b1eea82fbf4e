package halfvec

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension matches every *ErrInvalidDimension.
	ErrDimension = errors.New("invalid dimension")

	// ErrMalformed matches every *ErrMalformedBuffer.
	ErrMalformed = errors.New("malformed buffer")

	// ErrFormat matches every *ErrUnsupportedFormat.
	ErrFormat = errors.New("unsupported format")
)

// ErrInvalidDimension indicates that the vectors of a batch do not share a
// dimension. Index is the position of the first offending vector.
type ErrInvalidDimension struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: vector %d has %d components, expected %d", e.Index, e.Actual, e.Expected)
}

func (e *ErrInvalidDimension) Is(target error) bool { return target == ErrDimension }

// ErrMalformedBuffer indicates an encoded buffer that cannot hold whole
// 16-bit components.
type ErrMalformedBuffer struct {
	Length int
}

func (e *ErrMalformedBuffer) Error() string {
	return fmt.Sprintf("malformed buffer: length %d is not a multiple of 2", e.Length)
}

func (e *ErrMalformedBuffer) Is(target error) bool { return target == ErrMalformed }

// ErrUnsupportedFormat indicates a Format outside the known set.
type ErrUnsupportedFormat struct {
	Format Format
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format: %d", uint8(e.Format))
}

func (e *ErrUnsupportedFormat) Is(target error) bool { return target == ErrFormat }
