package stats

import (
	"fmt"
	"math"
	"strings"

	"docsim/internal/textutil"
	"docsim/internal/vectorspace"
)

// TFDenominator selects what a term count is divided by.
type TFDenominator int

const (
	// DistinctTerms divides by the number of distinct terms in the document.
	// This is what every historical report used.
	DistinctTerms TFDenominator = iota
	// TotalTokens divides by the document's token count, the textbook tf.
	TotalTokens
)

func (d TFDenominator) String() string {
	switch d {
	case TotalTokens:
		return "total"
	default:
		return "distinct"
	}
}

// ParseTFDenominator accepts "distinct" or "total".
func ParseTFDenominator(value string) (TFDenominator, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "distinct":
		return DistinctTerms, nil
	case "total":
		return TotalTokens, nil
	default:
		return DistinctTerms, fmt.Errorf("tf denominator: unsupported value %q", value)
	}
}

// TermWeight is one term and its statistic, used where output order matters.
type TermWeight struct {
	Term   string  `json:"term" yaml:"term"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// TermFrequency returns tf for every distinct term of seq. An empty sequence
// yields an empty map.
func TermFrequency(seq textutil.Tokens, denom TFDenominator) map[string]float64 {
	ordered := OrderedTermFrequency(seq, denom)
	tf := make(map[string]float64, len(ordered))
	for _, tw := range ordered {
		tf[tw.Term] = tw.Weight
	}
	return tf
}

// OrderedTermFrequency is TermFrequency in first-occurrence order.
func OrderedTermFrequency(seq textutil.Tokens, denom TFDenominator) []TermWeight {
	counts := make(map[string]int, len(seq))
	order := make([]string, 0, len(seq))
	for _, term := range seq {
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}
	if len(order) == 0 {
		return []TermWeight{}
	}

	d := float64(len(order))
	if denom == TotalTokens {
		d = float64(len(seq))
	}
	out := make([]TermWeight, len(order))
	for i, term := range order {
		out[i] = TermWeight{Term: term, Weight: float64(counts[term]) / d}
	}
	return out
}

// DocumentFrequency counts, for every term, the documents containing it at
// least once.
func DocumentFrequency(corpus []textutil.Tokens) map[string]int {
	df := make(map[string]int)
	for _, seq := range corpus {
		seen := make(map[string]struct{}, len(seq))
		for _, term := range seq {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	return df
}

// IDF returns ln(n / (1 + docCount)). With docCount drawn from the corpus it
// is at least 1, so the +1 never guards a real zero.
func IDF(n, docCount int) float64 {
	return math.Log(float64(n) / float64(1+docCount))
}

// InverseDocumentFrequency returns idf for every term of the corpus
// vocabulary.
func InverseDocumentFrequency(corpus []textutil.Tokens) (map[string]float64, error) {
	ordered, err := OrderedIDF(corpus)
	if err != nil {
		return nil, err
	}
	idf := make(map[string]float64, len(ordered))
	for _, tw := range ordered {
		idf[tw.Term] = tw.Weight
	}
	return idf, nil
}

// OrderedIDF is InverseDocumentFrequency in vocabulary order.
func OrderedIDF(corpus []textutil.Tokens) ([]TermWeight, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("idf: %w", vectorspace.ErrEmptyCorpus)
	}
	vocab := vectorspace.BuildVocabulary(corpus)
	df := DocumentFrequency(corpus)
	n := len(corpus)
	out := make([]TermWeight, vocab.Len())
	for i, term := range vocab.Terms() {
		out[i] = TermWeight{Term: term, Weight: IDF(n, df[term])}
	}
	return out, nil
}
