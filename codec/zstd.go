package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecodeAllCapLimit(true))
}

// zstdMaxRatio bounds Zstandard output per input byte: an RLE block spends
// four bytes on at most 128 KiB of output.
const zstdMaxRatio = 32 * 1024

// Zstd compresses blocks with Zstandard using pooled coders.
type Zstd struct{}

func (Zstd) ID() uint8    { return IDZstd }
func (Zstd) Name() string { return "zstd" }

func (Zstd) Compress(src []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(src, nil), nil
}

func (Zstd) Decompress(src []byte, rawLen int) ([]byte, error) {
	if err := checkExpansion(len(src), rawLen, zstdMaxRatio); err != nil {
		return nil, err
	}
	dec, err := getZstdDecoder()
	if err != nil {
		return nil, err
	}
	defer zstdDecoderPool.Put(dec)

	// The decoder never grows dst beyond its capacity.
	out, err := dec.DecodeAll(src, make([]byte, 0, rawLen))
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrSizeMismatch, rawLen)
		}
		return nil, err
	}
	if len(out) != rawLen {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(out), rawLen)
	}
	return out, nil
}
