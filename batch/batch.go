package batch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/halfvec"
)

// ErrIDCount is returned when a batch has a different number of IDs and vectors.
var ErrIDCount = errors.New("batch: id count does not match vector count")

// Batch is a set of encoded vectors sharing one format and dimension.
type Batch struct {
	Format    halfvec.Format
	Dimension int
	IDs       []int64
	Vectors   []halfvec.EncodedVector
}

// NewBatch encodes vectors in the given format. When ids is nil the vectors
// are numbered 0..n-1.
func NewBatch(format halfvec.Format, vectors [][]float32, ids []int64) (*Batch, error) {
	if ids != nil && len(ids) != len(vectors) {
		return nil, fmt.Errorf("%w: %d ids, %d vectors", ErrIDCount, len(ids), len(vectors))
	}

	encoded, err := halfvec.Encode(vectors, format)
	if err != nil {
		return nil, err
	}

	return FromEncoded(format, encoded, ids)
}

// FromEncoded wraps already encoded vectors. The dimension is taken from
// the first vector.
func FromEncoded(format halfvec.Format, vectors []halfvec.EncodedVector, ids []int64) (*Batch, error) {
	if ids == nil {
		ids = make([]int64, len(vectors))
		for i := range ids {
			ids[i] = int64(i)
		}
	}

	b := &Batch{
		Format:  format,
		IDs:     ids,
		Vectors: vectors,
	}
	if len(vectors) > 0 {
		b.Dimension = vectors[0].Dimension()
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the number of vectors in the batch.
func (b *Batch) Len() int { return len(b.Vectors) }

// Validate checks that the batch is internally consistent.
func (b *Batch) Validate() error {
	if !b.Format.Valid() {
		return &halfvec.ErrUnsupportedFormat{Format: b.Format}
	}
	if b.Dimension < 0 {
		return &halfvec.ErrInvalidDimension{Index: 0, Expected: 0, Actual: b.Dimension}
	}
	if len(b.IDs) != len(b.Vectors) {
		return fmt.Errorf("%w: %d ids, %d vectors", ErrIDCount, len(b.IDs), len(b.Vectors))
	}
	for i, v := range b.Vectors {
		if len(v)%2 != 0 {
			return &halfvec.ErrMalformedBuffer{Length: len(v)}
		}
		if v.Dimension() != b.Dimension {
			return &halfvec.ErrInvalidDimension{Index: i, Expected: b.Dimension, Actual: v.Dimension()}
		}
	}
	return nil
}

// Decode returns the float32 form of every vector, in batch order.
func (b *Batch) Decode() ([][]float32, error) {
	out := make([][]float32, len(b.Vectors))
	for i, v := range b.Vectors {
		d, err := halfvec.Decode(v, b.Format)
		if err != nil {
			return nil, fmt.Errorf("batch: vector %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}
