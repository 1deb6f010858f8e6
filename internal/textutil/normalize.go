package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"
)

// Tokens is the ordered, normalized term sequence of one document.
type Tokens []string

// Normalizer applies one fixed punctuation set, stopword set and
// case-folding language to any number of documents.
type Normalizer struct {
	punctuation PunctuationSet
	stopwords   StopwordSet
	caseTag     textlang.Tag
}

// NewNormalizer returns a Normalizer that folds case with the rules of tag.
// Use textlang.Und for language-neutral lowercasing.
func NewNormalizer(punctuation PunctuationSet, stopwords StopwordSet, tag textlang.Tag) *Normalizer {
	return &Normalizer{
		punctuation: punctuation,
		stopwords:   stopwords,
		caseTag:     tag,
	}
}

// Normalize lowercases text, deletes punctuation, splits on whitespace and
// drops stopwords. It is a convenience for a language-neutral Normalizer.
func Normalize(text string, punctuation PunctuationSet, stopwords StopwordSet) Tokens {
	return NewNormalizer(punctuation, stopwords, textlang.Und).Normalize(text)
}

// NormalizeAll applies Normalize to every text, keeping input order.
func NormalizeAll(texts []string, punctuation PunctuationSet, stopwords StopwordSet) []Tokens {
	return NewNormalizer(punctuation, stopwords, textlang.Und).NormalizeAll(texts)
}

// Normalize produces the token sequence for one document. The result is
// never nil.
func (n *Normalizer) Normalize(text string) Tokens {
	// cases.Caser carries state between calls; one per document keeps the
	// Normalizer safe to share.
	lowered := cases.Lower(n.caseTag).String(text)
	stripped := n.punctuation.Strip(lowered)
	words := strings.Fields(stripped)
	tokens := make(Tokens, 0, len(words))
	for _, word := range words {
		if n.stopwords.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// NormalizeAll builds the corpus: one token sequence per input text.
func (n *Normalizer) NormalizeAll(texts []string) []Tokens {
	out := make([]Tokens, len(texts))
	for i, text := range texts {
		out[i] = n.Normalize(text)
	}
	return out
}

// Distinct returns the distinct terms of t in first-occurrence order.
func (t Tokens) Distinct() []string {
	seen := make(map[string]struct{}, len(t))
	out := make([]string, 0, len(t))
	for _, term := range t {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// Count returns how many times term occurs in t.
func (t Tokens) Count(term string) int {
	n := 0
	for _, candidate := range t {
		if candidate == term {
			n++
		}
	}
	return n
}
