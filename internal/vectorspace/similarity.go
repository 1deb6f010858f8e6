package vectorspace

import (
	"errors"
	"fmt"
	"math"
)

// IndexMode selects which components take part in norms and dot products.
type IndexMode int

const (
	// FullRange sums every component.
	FullRange IndexMode = iota
	// SkipFirst ignores component 0, matching the historical reports.
	SkipFirst
)

func (m IndexMode) String() string {
	switch m {
	case SkipFirst:
		return "skip-first"
	default:
		return "full-range"
	}
}

func (m IndexMode) start() int {
	if m == SkipFirst {
		return 1
	}
	return 0
}

// Pair is the angle between documents A and B, A < B.
type Pair struct {
	A          int
	B          int
	Angle      float64
	Degenerate bool
}

// Norm returns the Euclidean length of v over the components selected by mode.
func Norm(v Vector, mode IndexMode) float64 {
	return math.Sqrt(sumSquares(v, mode))
}

func sumSquares(v Vector, mode IndexMode) float64 {
	var sum float64
	for i := mode.start(); i < len(v); i++ {
		c := float64(v[i])
		sum += c * c
	}
	return sum
}

// Dot returns the dot product of a and b over the components selected by mode.
func Dot(a, b Vector, mode IndexMode) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchError{Left: len(a), Right: len(b)}
	}
	var sum float64
	for i := mode.start(); i < len(a); i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum, nil
}

// Cosine returns dot(a, b) / (norm(a) * norm(b)), clamped to [-1, 1].
func Cosine(a, b Vector, mode IndexMode) (float64, error) {
	dot, err := Dot(a, b, mode)
	if err != nil {
		return 0, err
	}
	sa := sumSquares(a, mode)
	if sa == 0 {
		return 0, &DegenerateVectorError{Index: -1, Mode: mode}
	}
	sb := sumSquares(b, mode)
	if sb == 0 {
		return 0, &DegenerateVectorError{Index: -1, Mode: mode}
	}
	// sqrt(sa*sb) instead of sqrt(sa)*sqrt(sb): a vector against itself then
	// divides exactly to 1.
	cos := dot / math.Sqrt(sa*sb)
	return math.Max(-1, math.Min(1, cos)), nil
}

// CosineAngle returns the angle between a and b in radians.
func CosineAngle(a, b Vector, mode IndexMode) (float64, error) {
	cos, err := Cosine(a, b, mode)
	if err != nil {
		return 0, err
	}
	return math.Acos(cos), nil
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AllPairs returns the angle for every pair i < j, i ascending then j
// ascending. One vector yields no pairs. The first degenerate vector aborts
// the run with a DegenerateVectorError carrying its document index.
func AllPairs(vectors []Vector, mode IndexMode) ([]Pair, error) {
	return allPairs(vectors, mode, false)
}

// AllPairsLenient is AllPairs, except a pair involving a degenerate vector is
// reported with Degenerate set and a NaN angle instead of failing.
func AllPairsLenient(vectors []Vector, mode IndexMode) ([]Pair, error) {
	return allPairs(vectors, mode, true)
}

func allPairs(vectors []Vector, mode IndexMode, lenient bool) ([]Pair, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("similarity: %w", ErrEmptyCorpus)
	}
	n := len(vectors)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			angle, err := CosineAngle(vectors[i], vectors[j], mode)
			if err != nil {
				var degenerate *DegenerateVectorError
				if !errors.As(err, &degenerate) {
					return nil, fmt.Errorf("similarity %d-%d: %w", i, j, err)
				}
				if lenient {
					pairs = append(pairs, Pair{A: i, B: j, Angle: math.NaN(), Degenerate: true})
					continue
				}
				idx := i
				if Norm(vectors[i], mode) != 0 {
					idx = j
				}
				return nil, fmt.Errorf("similarity %d-%d: %w", i, j, &DegenerateVectorError{Index: idx, Mode: mode})
			}
			pairs = append(pairs, Pair{A: i, B: j, Angle: angle})
		}
	}
	return pairs, nil
}
