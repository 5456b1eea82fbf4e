// Package testutil provides deterministic data generation for tests,
// benchmarks and the example programs.
//
//	rng := testutil.NewRNG(seed)
//	vectors := rng.UniformVectors(5000, 128) // uniform [0, 1)
//	queries := rng.Sample(len(vectors), 10)  // distinct indexes
package testutil
