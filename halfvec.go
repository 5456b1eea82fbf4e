package halfvec

// EncodedVector holds one vector as packed little-endian 16-bit components,
// two bytes per component. Treat it as immutable once produced.
type EncodedVector []byte

// Dimension returns the number of components held by v.
func (v EncodedVector) Dimension() int { return len(v) / 2 }

// Encode packs every vector of the batch in the given format. All vectors
// must share one dimension; on error no output is returned.
func Encode(vectors [][]float32, format Format) ([]EncodedVector, error) {
	s, err := format.spec()
	if err != nil {
		return nil, err
	}
	if err := checkDimensions(vectors); err != nil {
		return nil, err
	}

	out := make([]EncodedVector, len(vectors))
	for i, v := range vectors {
		out[i] = encodeOne(s, v)
	}
	return out, nil
}

// EncodeVector packs a single vector.
func EncodeVector(v []float32, format Format) (EncodedVector, error) {
	s, err := format.spec()
	if err != nil {
		return nil, err
	}
	return encodeOne(s, v), nil
}

// Decode unpacks buf, which must have been produced with the same format.
func Decode(buf []byte, format Format) ([]float32, error) {
	s, err := format.spec()
	if err != nil {
		return nil, err
	}
	return decodeOne(s, buf)
}

// ApproximatelyEqual reports whether |a-b| is within the tolerance of format.
// It is false for an unknown format and whenever a or b is NaN.
func ApproximatelyEqual(a, b float32, format Format) bool {
	s, ok := formats[format]
	if !ok {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= s.tolerance
}

// VectorsApproximatelyEqual reports whether a and b have the same length and
// every pair of components is ApproximatelyEqual.
func VectorsApproximatelyEqual(a, b []float32, format Format) bool {
	if len(a) != len(b) || !format.Valid() {
		return false
	}
	for i := range a {
		if !ApproximatelyEqual(a[i], b[i], format) {
			return false
		}
	}
	return true
}

func checkDimensions(vectors [][]float32) error {
	if len(vectors) == 0 {
		return nil
	}
	dim := len(vectors[0])
	for i, v := range vectors[1:] {
		if len(v) != dim {
			return &ErrInvalidDimension{Index: i + 1, Expected: dim, Actual: len(v)}
		}
	}
	return nil
}

func encodeOne(s formatSpec, v []float32) EncodedVector {
	buf := make(EncodedVector, 2*len(v))
	s.put(buf, v)
	return buf
}

func decodeOne(s formatSpec, buf []byte) ([]float32, error) {
	if len(buf)%2 != 0 {
		return nil, &ErrMalformedBuffer{Length: len(buf)}
	}
	v := make([]float32, len(buf)/2)
	s.get(v, buf)
	return v, nil
}
