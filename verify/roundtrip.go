package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/halfvec"
)

// DefaultMaxMismatches caps the number of Mismatch entries kept in a Report.
const DefaultMaxMismatches = 16

// ErrShapeMismatch is returned when originals and decoded vectors disagree
// in count or dimension.
var ErrShapeMismatch = errors.New("verify: shape mismatch")

// Mismatch describes one component outside the format tolerance.
type Mismatch struct {
	Vector    int
	Component int
	Want      float32
	Got       float32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("vector %d component %d: want %v got %v", m.Vector, m.Component, m.Want, m.Got)
}

// Report summarizes a round-trip verification.
type Report struct {
	Format      halfvec.Format
	Vectors     int
	Components  int
	MaxAbsError float32
	// Failed holds the indexes of vectors with at least one mismatch.
	Failed *roaring.Bitmap
	// Mismatches holds the first mismatches found, in vector order.
	Mismatches []Mismatch
}

// OK reports whether every component was within tolerance.
func (r *Report) OK() bool {
	return r.Failed.IsEmpty()
}

// FailedCount returns the number of vectors with a mismatch.
func (r *Report) FailedCount() int {
	return int(r.Failed.GetCardinality())
}

// RoundTrip compares decoded[i] against originals[i] for every i.
func RoundTrip(originals, decoded [][]float32, format halfvec.Format) (*Report, error) {
	if !format.Valid() {
		return nil, &halfvec.ErrUnsupportedFormat{Format: format}
	}
	if len(originals) != len(decoded) {
		return nil, fmt.Errorf("%w: %d originals, %d decoded", ErrShapeMismatch, len(originals), len(decoded))
	}

	r := &Report{
		Format:  format,
		Vectors: len(originals),
		Failed:  roaring.New(),
	}
	tol := float64(format.Tolerance())

	for i, want := range originals {
		got := decoded[i]
		if len(got) != len(want) {
			return nil, fmt.Errorf("%w: vector %d has %d components, decoded %d", ErrShapeMismatch, i, len(want), len(got))
		}
		r.Components += len(want)

		for j := range want {
			d := math.Abs(float64(got[j]) - float64(want[j]))
			if d > float64(r.MaxAbsError) || math.IsNaN(d) {
				r.MaxAbsError = float32(d)
			}
			if d <= tol {
				continue
			}
			r.Failed.Add(uint32(i))
			if len(r.Mismatches) < DefaultMaxMismatches {
				r.Mismatches = append(r.Mismatches, Mismatch{Vector: i, Component: j, Want: want[j], Got: got[j]})
			}
		}
	}
	return r, nil
}

// Codec encodes originals with c, decodes them again and verifies the round
// trip. The encoded buffers are returned for further checks. The outcome is
// reported to the codec's metrics collector and logger.
func Codec(c *halfvec.Codec, originals [][]float32) (*Report, []halfvec.EncodedVector, error) {
	encoded, err := c.Encode(originals)
	if err != nil {
		return nil, nil, err
	}
	decoded, err := c.DecodeBatch(encoded)
	if err != nil {
		return nil, nil, err
	}
	r, err := RoundTrip(originals, decoded, c.Format())
	if err != nil {
		return nil, nil, err
	}

	c.Metrics().RecordVerify(c.Format(), r.Vectors, r.FailedCount())
	c.Logger().LogVerify(r.Vectors, r.FailedCount(), r.MaxAbsError)
	return r, encoded, nil
}
