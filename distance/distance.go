package distance

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/blas/blas32"
)

func vector(v []float32) blas32.Vector {
	return blas32.Vector{N: len(v), Data: v, Inc: 1}
}

// Dot calculates the dot product of two vectors.
// It panics if a and b differ in length.
func Dot(a, b []float32) float32 {
	return blas32.Dot(vector(a), vector(b))
}

// Norm returns the L2 norm of v.
func Norm(v []float32) float32 {
	return blas32.Nrm2(vector(v))
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Callers must validate that a and b have the same length; a shorter b panics
// and a longer b is read only up to len(a).
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Cosine returns the cosine similarity of a and b, or 0 if either has zero
// norm.
func Cosine(a, b []float32) float32 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	n := Norm(v)
	if n == 0 {
		return false
	}
	blas32.Scal(1/n, vector(v))
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := slices.Clone(src)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// HigherIsCloser reports whether larger scores mean closer vectors.
func (m Metric) HigherIsCloser() bool {
	return m == MetricCosine || m == MetricDot
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Provider returns the score function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return Dot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
