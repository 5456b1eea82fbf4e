package batch

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/halfvec"
	"github.com/hupe1980/halfvec/codec"
	"github.com/hupe1980/halfvec/internal/hash"
)

const (
	// Magic identifies a batch blob.
	Magic = "HVB1"
	// Version is the only header version this package reads and writes.
	Version = 1
	// HeaderSize is the fixed header length in bytes.
	HeaderSize = 24
)

var (
	ErrBadMagic           = errors.New("batch: bad magic")
	ErrUnsupportedVersion = errors.New("batch: unsupported version")
	ErrChecksumMismatch   = errors.New("batch: checksum mismatch")
	ErrTruncated          = errors.New("batch: truncated")
	ErrCorrupt            = errors.New("batch: corrupt")
	ErrUnknownCodec       = errors.New("batch: unknown codec")
	ErrTooLarge           = errors.New("batch: too large")
)

type header struct {
	format    halfvec.Format
	codecID   uint8
	dimension uint32
	count     uint32
	rawLen    uint32
	checksum  uint32
}

func (h *header) encode(buf []byte) {
	copy(buf[0:4], Magic)
	buf[4] = Version
	buf[5] = uint8(h.format)
	buf[6] = h.codecID
	buf[7] = 0
	binary.LittleEndian.PutUint32(buf[8:], h.dimension)
	binary.LittleEndian.PutUint32(buf[12:], h.count)
	binary.LittleEndian.PutUint32(buf[16:], h.rawLen)
	binary.LittleEndian.PutUint32(buf[20:], h.checksum)
}

func decodeHeader(buf []byte) (*header, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(buf), HeaderSize)
	}
	if string(buf[0:4]) != Magic {
		return nil, ErrBadMagic
	}
	if buf[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, buf[4])
	}

	h := &header{
		format:    halfvec.Format(buf[5]),
		codecID:   buf[6],
		dimension: binary.LittleEndian.Uint32(buf[8:]),
		count:     binary.LittleEndian.Uint32(buf[12:]),
		rawLen:    binary.LittleEndian.Uint32(buf[16:]),
		checksum:  binary.LittleEndian.Uint32(buf[20:]),
	}
	if !h.format.Valid() {
		return nil, &halfvec.ErrUnsupportedFormat{Format: h.format}
	}

	want := uint64(h.count) * (8 + 2*uint64(h.dimension))
	if want != uint64(h.rawLen) {
		return nil, fmt.Errorf("%w: body length %d, expected %d", ErrCorrupt, h.rawLen, want)
	}
	return h, nil
}

// Marshal serializes b, compressing the body with c. A nil codec means
// codec.Default.
func Marshal(b *Batch, c codec.Codec) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if c == nil {
		c = codec.Default
	}

	count := len(b.Vectors)
	rawLen := uint64(count) * (8 + 2*uint64(b.Dimension))
	if uint64(count) > math.MaxUint32 || uint64(b.Dimension) > math.MaxUint32 || rawLen > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d vectors of dimension %d", ErrTooLarge, count, b.Dimension)
	}

	body := make([]byte, rawLen)
	off := 0
	for _, id := range b.IDs {
		binary.LittleEndian.PutUint64(body[off:], uint64(id))
		off += 8
	}
	for _, v := range b.Vectors {
		off += copy(body[off:], v)
	}

	h := header{
		format:    b.Format,
		codecID:   codec.IDNone,
		dimension: uint32(b.Dimension),
		count:     uint32(count),
		rawLen:    uint32(rawLen),
		checksum:  hash.CRC32C(body),
	}

	payload := body
	if len(body) > 0 && c.ID() != codec.IDNone {
		compressed, err := c.Compress(body)
		if err != nil {
			return nil, fmt.Errorf("batch: compress with %s: %w", c.Name(), err)
		}
		if len(compressed) < len(body) {
			payload = compressed
			h.codecID = c.ID()
		}
	}

	out := make([]byte, HeaderSize+len(payload))
	h.encode(out)
	copy(out[HeaderSize:], payload)
	return out, nil
}

// Unmarshal parses a blob produced by Marshal. The returned batch does not
// alias data.
func Unmarshal(data []byte) (*Batch, error) {
	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByID(h.codecID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownCodec, h.codecID)
	}

	payload := data[HeaderSize:]
	rawLen := int(h.rawLen)

	var body []byte
	if h.codecID == codec.IDNone {
		switch {
		case len(payload) < rawLen:
			return nil, fmt.Errorf("%w: body has %d bytes, expected %d", ErrTruncated, len(payload), rawLen)
		case len(payload) > rawLen:
			return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(payload)-rawLen)
		}
		body = slices.Clone(payload)
	} else {
		body, err = c.Decompress(payload, rawLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %s body: %w", ErrCorrupt, c.Name(), err)
		}
	}

	if sum := hash.CRC32C(body); sum != h.checksum {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrChecksumMismatch, sum, h.checksum)
	}

	count := int(h.count)
	dim := int(h.dimension)
	stride := 2 * dim

	b := &Batch{
		Format:    h.format,
		Dimension: dim,
		IDs:       make([]int64, count),
		Vectors:   make([]halfvec.EncodedVector, count),
	}
	off := 0
	for i := range b.IDs {
		b.IDs[i] = int64(binary.LittleEndian.Uint64(body[off:]))
		off += 8
	}
	for i := range b.Vectors {
		b.Vectors[i] = halfvec.EncodedVector(body[off : off+stride : off+stride])
		off += stride
	}
	return b, nil
}
