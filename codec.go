package halfvec

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of vectors handed to one worker.
const minChunk = 64

// Codec encodes and decodes vectors in one Format, fanning batches out over
// a bounded set of goroutines and reporting to the configured logger and
// metrics collector. A Codec is safe for concurrent use.
type Codec struct {
	format  Format
	spec    formatSpec
	opts    options
	logger  *Logger
	metrics MetricsCollector
}

// New returns a Codec for format.
func New(format Format, optFns ...Option) (*Codec, error) {
	s, err := format.spec()
	if err != nil {
		return nil, err
	}
	o := applyOptions(optFns)
	return &Codec{
		format:  format,
		spec:    s,
		opts:    o,
		logger:  o.logger.WithFormat(format),
		metrics: o.metricsCollector,
	}, nil
}

// Format returns the layout this codec reads and writes.
func (c *Codec) Format() Format { return c.format }

// Tolerance returns the per-component error bound of the codec's format.
func (c *Codec) Tolerance() float32 { return c.spec.tolerance }

// Logger returns the codec's logger, already tagged with the format.
func (c *Codec) Logger() *Logger { return c.logger }

// Metrics returns the codec's metrics collector.
func (c *Codec) Metrics() MetricsCollector { return c.metrics }

// Encode packs the batch. The result is byte-identical to the package-level
// Encode regardless of concurrency.
func (c *Codec) Encode(vectors [][]float32) ([]EncodedVector, error) {
	start := time.Now()
	out, err := c.encode(vectors)
	c.metrics.RecordEncode(c.format, len(vectors), time.Since(start), err)

	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	c.logger.LogEncode(len(vectors), dim, err)
	return out, err
}

func (c *Codec) encode(vectors [][]float32) ([]EncodedVector, error) {
	if err := checkDimensions(vectors); err != nil {
		return nil, err
	}
	out := make([]EncodedVector, len(vectors))
	err := c.forEachChunk(len(vectors), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			out[i] = encodeOne(c.spec, vectors[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decode unpacks a single buffer.
func (c *Codec) Decode(buf []byte) ([]float32, error) {
	start := time.Now()
	v, err := decodeOne(c.spec, buf)
	c.metrics.RecordDecode(c.format, 1, time.Since(start), err)
	c.logger.LogDecode(1, err)
	return v, err
}

// DecodeBatch unpacks every buffer, preserving order. If any buffer is
// malformed the whole batch fails.
func (c *Codec) DecodeBatch(bufs []EncodedVector) ([][]float32, error) {
	start := time.Now()
	out := make([][]float32, len(bufs))
	err := c.forEachChunk(len(bufs), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			v, err := decodeOne(c.spec, bufs[i])
			if err != nil {
				return err
			}
			out[i] = v
		}
		return nil
	})
	c.metrics.RecordDecode(c.format, len(bufs), time.Since(start), err)
	c.logger.LogDecode(len(bufs), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApproximatelyEqual reports whether |a-b| is within the codec's tolerance.
func (c *Codec) ApproximatelyEqual(a, b float32) bool {
	return ApproximatelyEqual(a, b, c.format)
}

// forEachChunk splits [0,n) into contiguous ranges and runs fn on each,
// using at most opts.concurrency goroutines.
func (c *Codec) forEachChunk(n int, fn func(lo, hi int) error) error {
	workers := c.opts.concurrency
	if workers <= 1 || n <= minChunk {
		return fn(0, n)
	}

	size := max(minChunk, (n+workers-1)/workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}
