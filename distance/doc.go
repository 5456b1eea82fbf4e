// Package distance provides the similarity functions used to check that
// decoded vectors still find themselves.
//
// Dot products and norms run on gonum's blas32 kernels.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (smaller is closer)
//   - MetricCosine: Cosine similarity (larger is closer)
//   - MetricDot: Dot product (larger is closer)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Cosine(a, b)
//	normalized, ok := distance.NormalizeL2Copy(vec)
package distance
