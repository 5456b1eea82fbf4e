package codec

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4 compresses blocks with the LZ4 block format.
type LZ4 struct{}

func (LZ4) ID() uint8    { return IDLZ4 }
func (LZ4) Name() string { return "lz4" }

// Compress may return a block larger than src for incompressible input;
// callers fall back to None when compression does not pay off.
func (LZ4) Compress(src []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// lz4MaxRatio bounds LZ4 output per input byte: a match length extension
// byte adds at most 255 bytes.
const lz4MaxRatio = 255

func (LZ4) Decompress(src []byte, rawLen int) ([]byte, error) {
	if err := checkExpansion(len(src), rawLen, lz4MaxRatio); err != nil {
		return nil, err
	}
	dst := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	if n != rawLen {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, n, rawLen)
	}
	return dst, nil
}
