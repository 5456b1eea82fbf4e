package verify

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/halfvec/distance"
)

// ErrInvalidK is returned when k is not positive.
var ErrInvalidK = errors.New("verify: k must be positive")

// Hit is one search result: the corpus index and its score under the metric.
type Hit struct {
	ID    int
	Score float32
}

// Search returns the k corpus entries closest to query by exact scan.
// Equal scores are ordered by ascending ID so results are deterministic.
// Every corpus vector must have the query's dimension.
func Search(corpus [][]float32, query []float32, k int, metric distance.Metric) ([]Hit, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	score, err := distance.Provider(metric)
	if err != nil {
		return nil, err
	}

	for i, v := range corpus {
		if len(v) != len(query) {
			return nil, fmt.Errorf("%w: corpus vector %d has %d components, query %d", ErrShapeMismatch, i, len(v), len(query))
		}
	}

	hits := make([]Hit, len(corpus))
	for i, v := range corpus {
		hits[i] = Hit{ID: i, Score: score(query, v)}
	}

	higher := metric.HigherIsCloser()
	slices.SortFunc(hits, func(a, b Hit) int {
		c := cmp.Compare(a.Score, b.Score)
		if higher {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}
