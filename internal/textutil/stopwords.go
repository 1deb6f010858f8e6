package textutil

import (
	"slices"
	"sort"
	"strings"

	"docsim/internal/language"
)

// StopwordSet holds the tokens dropped after splitting. Matching is exact and
// case-sensitive; tokens are already lowercased when they are checked.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from words, skipping blanks.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Merge returns a new set holding s and words.
func (s StopwordSet) Merge(words ...string) StopwordSet {
	out := make(StopwordSet, len(s)+len(words))
	for w := range s {
		out[w] = struct{}{}
	}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			out[w] = struct{}{}
		}
	}
	return out
}

// Words returns the stopwords in lexical order.
func (s StopwordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// spanishStopwords is the historical list the song corpus was tuned against.
var spanishStopwords = []string{
	"la", "a", "de", "se", "mi", "es", "con", "le", "si", "y", "que",
	"las", "el", "en", "un", "este", "los", "una", "al", "por", "su",
	"te", "ya", "ha", "ahí", "era", "quedó", "han", "aquel", "me",
}

var englishStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "or", "that",
	"the", "to", "was", "were", "will", "with", "this", "but", "they",
	"have", "had", "what", "when", "where", "who", "which", "their",
	"if", "each", "do", "not", "no", "so", "can",
}

var builtinStopwords = map[string][]string{
	"es": spanishStopwords,
	"en": englishStopwords,
}

// BuiltinStopwords returns the built-in list for a language code in any
// spelling the language package understands.
func BuiltinStopwords(lang string) (StopwordSet, bool) {
	words, ok := builtinStopwords[language.ToISO2(lang)]
	if !ok {
		return nil, false
	}
	return NewStopwordSet(words...), true
}

// BuiltinLanguages lists the ISO 639-1 codes that ship a stopword list.
func BuiltinLanguages() []string {
	codes := make([]string, 0, len(builtinStopwords))
	for code := range builtinStopwords {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
