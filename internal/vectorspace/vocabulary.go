package vectorspace

import "docsim/internal/textutil"

// Vocabulary is the ordered set of distinct terms of a corpus, in order of
// first occurrence. The zero value is an empty vocabulary.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// BuildVocabulary concatenates sequences in order and keeps the first
// occurrence of every term.
func BuildVocabulary(sequences []textutil.Tokens) Vocabulary {
	v := Vocabulary{index: make(map[string]int)}
	for _, seq := range sequences {
		for _, term := range seq {
			if _, ok := v.index[term]; ok {
				continue
			}
			v.index[term] = len(v.terms)
			v.terms = append(v.terms, term)
		}
	}
	return v
}

// Len returns the number of distinct terms.
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the terms in enumeration order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Term returns the term at position i.
func (v Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Index returns the position of term, if present.
func (v Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}
