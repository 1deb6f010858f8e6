package vectorspace

import (
	"fmt"

	"docsim/internal/textutil"
)

// Vector holds one count per vocabulary term, positionally aligned with the
// Vocabulary it was built from.
type Vector []int

// Sum returns the total count across all components.
func (v Vector) Sum() int {
	total := 0
	for _, c := range v {
		total += c
	}
	return total
}

// Vectorize counts every vocabulary term in seq. Terms of seq that are not in
// the vocabulary are ignored.
func Vectorize(seq textutil.Tokens, vocab Vocabulary) Vector {
	vec := make(Vector, vocab.Len())
	for _, term := range seq {
		if i, ok := vocab.index[term]; ok {
			vec[i]++
		}
	}
	return vec
}

// VectorizeAll vectorizes every sequence against one shared vocabulary.
func VectorizeAll(sequences []textutil.Tokens, vocab Vocabulary) ([]Vector, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("vectorize: no documents: %w", ErrEmptyCorpus)
	}
	if vocab.Len() == 0 {
		return nil, fmt.Errorf("vectorize: vocabulary has no terms: %w", ErrEmptyCorpus)
	}
	vectors := make([]Vector, len(sequences))
	for i, seq := range sequences {
		vectors[i] = Vectorize(seq, vocab)
	}
	return vectors, nil
}
