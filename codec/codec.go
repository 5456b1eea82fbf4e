// Package codec centralizes block compression for persisted vector batches.
//
// Codec identity is part of the batch header: changing what an ID means
// makes previously written batches undecodable.
package codec

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned when a decompressed block does not have the
// length recorded for it.
var ErrSizeMismatch = errors.New("codec: decompressed size mismatch")

// ErrExpansion is returned when a declared uncompressed length is larger
// than the codec could produce from the given input.
var ErrExpansion = errors.New("codec: declared size exceeds maximum expansion")

// checkExpansion rejects rawLen before any buffer of that size is allocated.
// Every compressed byte can stand for at most ratio output bytes.
func checkExpansion(srcLen, rawLen, ratio int) error {
	if rawLen < 0 || int64(rawLen) > int64(srcLen)*int64(ratio)+expansionSlack {
		return fmt.Errorf("%w: %d bytes from %d", ErrExpansion, rawLen, srcLen)
	}
	return nil
}

const expansionSlack = 64

// Codec compresses and decompresses whole blocks.
// Implementations must be safe for concurrent use.
type Codec interface {
	// ID is the stable identifier written to headers.
	ID() uint8
	// Name is the stable human-readable name.
	Name() string
	// Compress returns the compressed form of src.
	Compress(src []byte) ([]byte, error)
	// Decompress restores a block whose uncompressed length is rawLen.
	Decompress(src []byte, rawLen int) ([]byte, error)
}

const (
	// IDNone marks an uncompressed block.
	IDNone uint8 = 0
	// IDLZ4 marks an LZ4 block (fast, modest ratio).
	IDLZ4 uint8 = 1
	// IDZstd marks a Zstandard block (slower, better ratio).
	IDZstd uint8 = 2
)

// Default is the codec used when none is configured.
var Default Codec = LZ4{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "none", "":
		return None{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	default:
		return nil, false
	}
}

// ByID returns a built-in codec by its header identifier.
func ByID(id uint8) (Codec, bool) {
	switch id {
	case IDNone:
		return None{}, true
	case IDLZ4:
		return LZ4{}, true
	case IDZstd:
		return Zstd{}, true
	default:
		return nil, false
	}
}

// None stores blocks as they are.
type None struct{}

func (None) ID() uint8    { return IDNone }
func (None) Name() string { return "none" }

func (None) Compress(src []byte) ([]byte, error) { return src, nil }

func (None) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) != rawLen {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(src), rawLen)
	}
	return src, nil
}
