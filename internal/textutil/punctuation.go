package textutil

import "strings"

// DefaultPunctuation is the historical punctuation list, Spanish inverted
// marks and the backslash included.
const DefaultPunctuation = "¡!()-[]{};:'\"\\,<>./¿?@#$%^&*_~"

// PunctuationSet is the set of characters deleted from text before it is split.
type PunctuationSet struct {
	chars string
	runes map[rune]struct{}
}

// NewPunctuationSet builds a set from every rune in chars. Duplicates are ignored.
func NewPunctuationSet(chars string) PunctuationSet {
	runes := make(map[rune]struct{}, len(chars))
	var b strings.Builder
	for _, r := range chars {
		if _, ok := runes[r]; ok {
			continue
		}
		runes[r] = struct{}{}
		b.WriteRune(r)
	}
	return PunctuationSet{chars: b.String(), runes: runes}
}

// Contains reports whether r is a punctuation character in the set.
func (p PunctuationSet) Contains(r rune) bool {
	_, ok := p.runes[r]
	return ok
}

// Len returns the number of distinct characters in the set.
func (p PunctuationSet) Len() int {
	return len(p.runes)
}

// String returns the set's characters in first-seen order.
func (p PunctuationSet) String() string {
	return p.chars
}

// Strip deletes every punctuation character from s. Nothing is inserted in
// their place.
func (p PunctuationSet) Strip(s string) string {
	if len(p.runes) == 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if _, ok := p.runes[r]; ok {
			return -1
		}
		return r
	}, s)
}
