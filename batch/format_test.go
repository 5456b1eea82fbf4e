package batch

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/hupe1980/halfvec"
	"github.com/hupe1980/halfvec/codec"
	"github.com/hupe1980/halfvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expanding always produces output larger than its input.
type expanding struct{}

func (expanding) ID() uint8    { return codec.IDZstd }
func (expanding) Name() string { return "expanding" }

func (expanding) Compress(src []byte) ([]byte, error) {
	return append(append([]byte{}, src...), 0), nil
}

func (expanding) Decompress(src []byte, rawLen int) ([]byte, error) {
	return src[:rawLen], nil
}

func randomBatch(t *testing.T, format halfvec.Format, n, dim int) *Batch {
	t.Helper()
	rng := testutil.NewRNG(7)
	b, err := NewBatch(format, rng.UniformRangeVectors(n, dim), nil)
	require.NoError(t, err)
	return b
}

func zeroBatch(t *testing.T, n, dim int) *Batch {
	t.Helper()
	vectors := make([][]float32, n)
	for i := range vectors {
		vectors[i] = make([]float32, dim)
	}
	b, err := NewBatch(halfvec.Float16, vectors, nil)
	require.NoError(t, err)
	return b
}

func TestMarshalUnmarshal(t *testing.T) {
	codecs := []codec.Codec{nil, codec.None{}, codec.LZ4{}, codec.Zstd{}}

	for _, format := range []halfvec.Format{halfvec.Float16, halfvec.BFloat16} {
		for _, c := range codecs {
			name := "default"
			if c != nil {
				name = c.Name()
			}
			t.Run(format.String()+"/"+name, func(t *testing.T) {
				b := randomBatch(t, format, 50, 24)

				data, err := Marshal(b, c)
				require.NoError(t, err)
				assert.Equal(t, Magic, string(data[:4]))

				got, err := Unmarshal(data)
				require.NoError(t, err)
				assert.Equal(t, b, got)
			})
		}
	}
}

func TestMarshal_RecordsCodec(t *testing.T) {
	b := zeroBatch(t, 100, 64)

	for _, c := range []codec.Codec{codec.LZ4{}, codec.Zstd{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := Marshal(b, c)
			require.NoError(t, err)
			assert.Equal(t, c.ID(), data[6])
			assert.Less(t, len(data), HeaderSize+100*(8+128))

			got, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, b, got)
		})
	}
}

func TestMarshal_FallsBackToNone(t *testing.T) {
	b := zeroBatch(t, 3, 4)

	data, err := Marshal(b, expanding{})
	require.NoError(t, err)
	assert.Equal(t, codec.IDNone, data[6])
	assert.Len(t, data, HeaderSize+3*(8+8))

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestMarshal_Header(t *testing.T) {
	b := randomBatch(t, halfvec.BFloat16, 3, 5)

	data, err := Marshal(b, codec.None{})
	require.NoError(t, err)

	assert.Equal(t, uint8(Version), data[4])
	assert.Equal(t, uint8(halfvec.BFloat16), data[5])
	assert.Equal(t, codec.IDNone, data[6])
	assert.Equal(t, uint8(0), data[7])
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(data[8:]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[12:]))
	assert.Equal(t, uint32(3*(8+10)), binary.LittleEndian.Uint32(data[16:]))
	assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(data[HeaderSize:]))
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(data[HeaderSize+8:]))
	assert.Equal(t, []byte(b.Vectors[0]), data[HeaderSize+24:HeaderSize+34])
}

func TestMarshal_Empty(t *testing.T) {
	b, err := NewBatch(halfvec.Float16, nil, nil)
	require.NoError(t, err)

	data, err := Marshal(b, codec.Default)
	require.NoError(t, err)
	assert.Len(t, data, HeaderSize)
	assert.Equal(t, codec.IDNone, data[6])

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, halfvec.Float16, got.Format)
}

func TestMarshal_Invalid(t *testing.T) {
	_, err := Marshal(&Batch{Format: 0}, nil)
	assert.ErrorIs(t, err, halfvec.ErrFormat)
}

func TestUnmarshal_DoesNotAlias(t *testing.T) {
	b := randomBatch(t, halfvec.Float16, 2, 4)
	data, err := Marshal(b, codec.None{})
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)

	want := append(halfvec.EncodedVector(nil), got.Vectors[0]...)
	for i := HeaderSize; i < len(data); i++ {
		data[i] = 0xFF
	}
	assert.Equal(t, want, got.Vectors[0])
}

func TestUnmarshal_Errors(t *testing.T) {
	b := randomBatch(t, halfvec.Float16, 4, 8)
	valid, err := Marshal(b, codec.None{})
	require.NoError(t, err)

	mutate := func(fn func([]byte) []byte) []byte {
		return fn(append([]byte(nil), valid...))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", valid[:HeaderSize-1], ErrTruncated},
		{"bad magic", mutate(func(d []byte) []byte { d[0] = 'X'; return d }), ErrBadMagic},
		{"version", mutate(func(d []byte) []byte { d[4] = 2; return d }), ErrUnsupportedVersion},
		{"format", mutate(func(d []byte) []byte { d[5] = 9; return d }), halfvec.ErrFormat},
		{"codec", mutate(func(d []byte) []byte { d[6] = 200; return d }), ErrUnknownCodec},
		{"body length", mutate(func(d []byte) []byte { binary.LittleEndian.PutUint32(d[16:], 1); return d }), ErrCorrupt},
		{"short body", valid[:len(valid)-1], ErrTruncated},
		{"trailing bytes", mutate(func(d []byte) []byte { return append(d, 0) }), ErrCorrupt},
		{"checksum", mutate(func(d []byte) []byte { d[len(d)-1] ^= 0x01; return d }), ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnmarshal_CorruptCompressedBody(t *testing.T) {
	b := zeroBatch(t, 100, 64)
	data, err := Marshal(b, codec.LZ4{})
	require.NoError(t, err)
	require.Equal(t, codec.IDLZ4, data[6])

	data[len(data)/2] ^= 0xFF

	_, err = Unmarshal(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt) || errors.Is(err, ErrChecksumMismatch), err.Error())
}

func TestUnmarshal_HugeRawLen(t *testing.T) {
	for _, c := range []codec.Codec{codec.LZ4{}, codec.Zstd{}} {
		t.Run(c.Name(), func(t *testing.T) {
			count := uint32(1 << 26)
			h := header{
				format:    halfvec.Float16,
				codecID:   c.ID(),
				dimension: 0,
				count:     count,
				rawLen:    count * 8,
			}
			data := make([]byte, HeaderSize+8)
			h.encode(data)

			_, err := Unmarshal(data)
			assert.ErrorIs(t, err, ErrCorrupt)
			assert.ErrorIs(t, err, codec.ErrExpansion)
		})
	}
}
