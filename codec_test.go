package halfvec

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/hupe1980/halfvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnsupportedFormat(t *testing.T) {
	c, err := New(Format(0))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestCodec(t *testing.T) {
	rng := testutil.NewRNG(42)
	vectors := rng.UniformVectors(1000, 128)

	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			want, err := Encode(vectors, f)
			require.NoError(t, err)

			for _, workers := range []int{1, 3, 8} {
				c, err := New(f, WithConcurrency(workers))
				require.NoError(t, err)
				assert.Equal(t, f, c.Format())
				assert.Equal(t, f.Tolerance(), c.Tolerance())

				got, err := c.Encode(vectors)
				require.NoError(t, err)
				require.Len(t, got, len(want))
				for i := range want {
					require.True(t, bytes.Equal(want[i], got[i]), "workers=%d vector=%d", workers, i)
				}

				decoded, err := c.DecodeBatch(got)
				require.NoError(t, err)
				require.Len(t, decoded, len(vectors))
				for i := range vectors {
					require.True(t, VectorsApproximatelyEqual(vectors[i], decoded[i], f))
				}

				single, err := c.Decode(got[7])
				require.NoError(t, err)
				assert.Equal(t, decoded[7], single)
			}
		})
	}
}

func TestCodec_Errors(t *testing.T) {
	c, err := New(Float16, WithConcurrency(4))
	require.NoError(t, err)

	vectors := make([][]float32, 500)
	for i := range vectors {
		vectors[i] = make([]float32, 8)
	}
	vectors[321] = make([]float32, 9)

	out, err := c.Encode(vectors)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrDimension)

	bufs := make([]EncodedVector, 300)
	for i := range bufs {
		bufs[i] = make(EncodedVector, 16)
	}
	bufs[250] = make(EncodedVector, 15)

	decoded, err := c.DecodeBatch(bufs)
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = c.Decode([]byte{1})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestForEachChunk(t *testing.T) {
	boom := errors.New("boom")

	for _, workers := range []int{1, 4} {
		c, err := New(Float16, WithConcurrency(workers))
		require.NoError(t, err)

		var covered [1000]bool
		require.NoError(t, c.forEachChunk(len(covered), func(lo, hi int) error {
			for i := lo; i < hi; i++ {
				covered[i] = true
			}
			return nil
		}))
		for i, ok := range covered {
			require.True(t, ok, "workers=%d index=%d", workers, i)
		}

		err = c.forEachChunk(1000, func(lo, hi int) error {
			if lo == 0 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom, "workers=%d", workers)
	}
}

func TestCodec_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c, err := New(BFloat16, WithMetricsCollector(metrics), WithConcurrency(1))
	require.NoError(t, err)
	assert.Same(t, metrics, c.Metrics())

	bufs, err := c.Encode([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = c.Encode([][]float32{{1}, {1, 2}})
	require.Error(t, err)

	_, err = c.DecodeBatch(bufs)
	require.NoError(t, err)
	_, err = c.Decode([]byte{1, 2, 3})
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.EncodeCount)
	assert.Equal(t, int64(1), stats.EncodeErrors)
	assert.Equal(t, int64(2), stats.EncodedVectors)
	assert.Equal(t, int64(2), stats.DecodeCount)
	assert.Equal(t, int64(1), stats.DecodeErrors)
	assert.Equal(t, int64(2), stats.DecodedVectors)
}

func TestCodec_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := New(Float16, WithLogger(logger))
	require.NoError(t, err)
	assert.NotNil(t, c.Logger())

	_, err = c.Encode([][]float32{{1, 2, 3}})
	require.NoError(t, err)
	_, err = c.Decode([]byte{1})
	require.Error(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "encode completed"), out)
	assert.True(t, strings.Contains(out, "format=float16"), out)
	assert.True(t, strings.Contains(out, "dimension=3"), out)
	assert.True(t, strings.Contains(out, "decode failed"), out)
}

func TestOptions_NilValues(t *testing.T) {
	o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil), WithConcurrency(0)})
	assert.NotNil(t, o.logger)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.GreaterOrEqual(t, o.concurrency, 1)
}

func BenchmarkCodec_Encode(b *testing.B) {
	vectors := testutil.NewRNG(7).UniformVectors(5000, 128)

	for _, f := range allFormats {
		b.Run(f.String(), func(b *testing.B) {
			c, err := New(f)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(len(vectors) * 128 * 4))
			for b.Loop() {
				if _, err := c.Encode(vectors); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
