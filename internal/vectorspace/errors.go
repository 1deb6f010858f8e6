package vectorspace

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when there are no documents or no terms to
	// vectorize or compare.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrDegenerateVector is returned when a vector's norm is zero and no angle
	// can be computed.
	ErrDegenerateVector = errors.New("degenerate vector")
	// ErrDimensionMismatch is returned when two vectors have different lengths.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

// DegenerateVectorError identifies the vector whose relevant norm is zero.
// Index is the document position when known, -1 otherwise.
type DegenerateVectorError struct {
	Index int
	Mode  IndexMode
}

func (e *DegenerateVectorError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("degenerate vector: zero norm (%s)", e.Mode)
	}
	return fmt.Sprintf("degenerate vector: document %d has zero norm (%s)", e.Index, e.Mode)
}

func (e *DegenerateVectorError) Unwrap() error { return ErrDegenerateVector }

// DimensionMismatchError reports the lengths of two incompatible vectors.
type DimensionMismatchError struct {
	Left  int
	Right int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector dimension mismatch: %d != %d", e.Left, e.Right)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }
