package verify

import (
	"bytes"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/halfvec"
	"github.com/hupe1980/halfvec/distance"
)

// QueryResult is the outcome of one self-retrieval query.
type QueryResult struct {
	Query int
	Hits  []Hit
	// TopIsQuery is true when the nearest neighbour is the query itself.
	TopIsQuery bool
	// PayloadEqual is true when the top hit's buffer is byte-identical to
	// the query's buffer.
	PayloadEqual bool
	// WithinTolerance is true when the top hit, decoded, matches the
	// query's original vector within the format tolerance.
	WithinTolerance bool
}

// OK reports whether all three checks passed.
func (q QueryResult) OK() bool {
	return q.TopIsQuery && q.PayloadEqual && q.WithinTolerance
}

func (q QueryResult) String() string {
	top := -1
	if len(q.Hits) > 0 {
		top = q.Hits[0].ID
	}
	return fmt.Sprintf("query %d: top=%d self=%v payload=%v tolerance=%v", q.Query, top, q.TopIsQuery, q.PayloadEqual, q.WithinTolerance)
}

// RetrievalReport collects the results of SelfRetrieval.
type RetrievalReport struct {
	Format  halfvec.Format
	Metric  distance.Metric
	K       int
	Results []QueryResult
	// Failed holds the query indexes whose checks did not all pass.
	Failed *roaring.Bitmap
}

// OK reports whether every query passed.
func (r *RetrievalReport) OK() bool {
	return r.Failed.IsEmpty()
}

// SelfRetrieval decodes encoded with c and, for every index in queries,
// searches the decoded corpus with the decoded query vector. The query must
// be its own top hit, the top hit's buffer must equal the query's buffer and
// the decoded top hit must match originals[query] within tolerance.
func SelfRetrieval(
	c *halfvec.Codec,
	encoded []halfvec.EncodedVector,
	originals [][]float32,
	queries []int,
	k int,
	metric distance.Metric,
) (*RetrievalReport, error) {
	if len(encoded) != len(originals) {
		return nil, fmt.Errorf("%w: %d encoded, %d originals", ErrShapeMismatch, len(encoded), len(originals))
	}
	if k <= 0 {
		return nil, ErrInvalidK
	}
	for _, q := range queries {
		if q < 0 || q >= len(encoded) {
			return nil, fmt.Errorf("verify: query %d out of range [0,%d)", q, len(encoded))
		}
	}

	// Odd-length buffers are left to DecodeBatch, which reports them as malformed.
	for i, buf := range encoded {
		if len(buf)%2 == 0 && buf.Dimension() != len(originals[i]) {
			return nil, fmt.Errorf("%w: vector %d has %d bytes, original has %d components", ErrShapeMismatch, i, len(buf), len(originals[i]))
		}
	}

	corpus, err := c.DecodeBatch(encoded)
	if err != nil {
		return nil, err
	}

	r := &RetrievalReport{
		Format:  c.Format(),
		Metric:  metric,
		K:       k,
		Results: make([]QueryResult, 0, len(queries)),
		Failed:  roaring.New(),
	}

	for _, q := range queries {
		hits, err := Search(corpus, corpus[q], k, metric)
		if err != nil {
			return nil, err
		}

		res := QueryResult{Query: q, Hits: hits}
		if len(hits) > 0 {
			top := hits[0].ID
			res.TopIsQuery = top == q
			res.PayloadEqual = bytes.Equal(encoded[top], encoded[q])
			res.WithinTolerance = halfvec.VectorsApproximatelyEqual(corpus[top], originals[q], c.Format())
		}
		if !res.OK() {
			r.Failed.Add(uint32(q))
			c.Logger().Warn("self-retrieval mismatch", "query", q, "result", res.String())
		} else {
			c.Logger().Debug("self-retrieval ok", "query", q, "score", hits[0].Score)
		}
		r.Results = append(r.Results, res)
	}

	c.Metrics().RecordVerify(c.Format(), len(queries), int(r.Failed.GetCardinality()))
	return r, nil
}
