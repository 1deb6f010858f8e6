package analysis

import (
	"fmt"
	"strings"

	textlang "golang.org/x/text/language"

	"docsim/internal/config"
	"docsim/internal/language"
	"docsim/internal/stats"
	"docsim/internal/textutil"
	"docsim/internal/vectorspace"
)

// Options holds the inputs that stay constant for one run.
type Options struct {
	Punctuation    textutil.PunctuationSet
	Stopwords      textutil.StopwordSet
	CaseLanguage   textlang.Tag
	Mode           vectorspace.IndexMode
	TFDenominator  stats.TFDenominator
	SkipDegenerate bool
}

// DefaultOptions mirrors the historical Spanish setup with the index fix applied.
func DefaultOptions() Options {
	stopwords, _ := textutil.BuiltinStopwords("es")
	return Options{
		Punctuation:   textutil.NewPunctuationSet(textutil.DefaultPunctuation),
		Stopwords:     stopwords,
		CaseLanguage:  textlang.Und,
		Mode:          vectorspace.FullRange,
		TFDenominator: stats.DistinctTerms,
	}
}

// OptionsFromConfig translates configuration into Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		return DefaultOptions(), nil
	}
	stopwords, err := Stopwords(cfg.Normalizer)
	if err != nil {
		return Options{}, err
	}
	denom, err := stats.ParseTFDenominator(cfg.Stats.TFDenominator)
	if err != nil {
		return Options{}, err
	}
	mode := vectorspace.FullRange
	if cfg.Similarity.SkipFirstTerm {
		mode = vectorspace.SkipFirst
	}
	return Options{
		Punctuation:    textutil.NewPunctuationSet(cfg.Normalizer.Punctuation),
		Stopwords:      stopwords,
		CaseLanguage:   language.Tag(cfg.Normalizer.CaseLanguage),
		Mode:           mode,
		TFDenominator:  denom,
		SkipDegenerate: cfg.Similarity.SkipDegenerate,
	}, nil
}

// Stopwords resolves the effective stopword set: the explicit list when
// present, otherwise the built-in lists for every configured language, plus
// any extra words.
func Stopwords(n config.Normalizer) (textutil.StopwordSet, error) {
	set := textutil.NewStopwordSet()
	if len(n.Stopwords) > 0 {
		set = set.Merge(n.Stopwords...)
	} else {
		for _, lang := range n.Languages {
			if strings.EqualFold(lang, config.LanguageNone) {
				continue
			}
			builtin, ok := textutil.BuiltinStopwords(lang)
			if !ok {
				return nil, fmt.Errorf("stopwords: no built-in list for language %q", lang)
			}
			set = set.Merge(builtin.Words()...)
		}
	}
	return set.Merge(n.ExtraStopwords...), nil
}
