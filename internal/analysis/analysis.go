package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docsim/internal/corpus"
	"docsim/internal/logging"
	"docsim/internal/stats"
	"docsim/internal/textutil"
	"docsim/internal/vectorspace"
)

// DocumentResult carries everything derived from one document.
type DocumentResult struct {
	Name   string
	Tokens textutil.Tokens
	Vector vectorspace.Vector
	TF     []stats.TermWeight
}

// Report is the outcome of one run.
type Report struct {
	RunID         string
	GeneratedAt   time.Time
	Mode          vectorspace.IndexMode
	TFDenominator stats.TFDenominator
	Documents     []DocumentResult
	Vocabulary    []string
	Pairs         []vectorspace.Pair
	IDF           []stats.TermWeight
	// DocumentFrequency maps each term to the number of documents holding it.
	DocumentFrequency map[string]int
}

// Names returns document names in corpus order.
func (r *Report) Names() []string {
	names := make([]string, len(r.Documents))
	for i, d := range r.Documents {
		names[i] = d.Name
	}
	return names
}

// DegeneratePairs counts pairs whose angle could not be computed.
func (r *Report) DegeneratePairs() int {
	n := 0
	for _, p := range r.Pairs {
		if p.Degenerate {
			n++
		}
	}
	return n
}

// Run analyzes docs. The context only scopes logging; the computation itself
// never blocks.
func Run(ctx context.Context, docs []corpus.Document, opts Options, logger *slog.Logger) (*Report, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("analysis: %w", vectorspace.ErrEmptyCorpus)
	}
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "analysis"))

	normalizer := textutil.NewNormalizer(opts.Punctuation, opts.Stopwords, opts.CaseLanguage)
	sequences := normalizer.NormalizeAll(corpus.Texts(docs))
	for i, seq := range sequences {
		logger.Debug("document normalized",
			logging.String("document", docs[i].Name),
			logging.Int("tokens", len(seq)),
		)
	}

	vocab := vectorspace.BuildVocabulary(sequences)
	vectors, err := vectorspace.VectorizeAll(sequences, vocab)
	if err != nil {
		return nil, fmt.Errorf("analysis: vectorize: %w", err)
	}
	logger.Debug("corpus vectorized", logging.Int("dimensions", vocab.Len()))

	var pairs []vectorspace.Pair
	if opts.SkipDegenerate {
		pairs, err = vectorspace.AllPairsLenient(vectors, opts.Mode)
	} else {
		pairs, err = vectorspace.AllPairs(vectors, opts.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	idf, err := stats.OrderedIDF(sequences)
	if err != nil {
		return nil, fmt.Errorf("analysis: idf: %w", err)
	}

	results := make([]DocumentResult, len(docs))
	for i, doc := range docs {
		results[i] = DocumentResult{
			Name:   doc.Name,
			Tokens: sequences[i],
			Vector: vectors[i],
			TF:     stats.OrderedTermFrequency(sequences[i], opts.TFDenominator),
		}
	}

	report := &Report{
		RunID:             runID,
		GeneratedAt:       time.Now().UTC(),
		Mode:              opts.Mode,
		TFDenominator:     opts.TFDenominator,
		Documents:         results,
		Vocabulary:        vocab.Terms(),
		Pairs:             pairs,
		IDF:               idf,
		DocumentFrequency: stats.DocumentFrequency(sequences),
	}

	if degenerate := report.DegeneratePairs(); degenerate > 0 {
		logging.WarnWithContext(logger, "pairs skipped for zero-norm vectors", "degenerate_vector",
			logging.Int("pairs", degenerate),
			logging.String("mode", opts.Mode.String()),
			logging.String(logging.FieldImpact, "angles for these pairs are not reported"),
		)
	}
	logger.Info("analysis complete",
		logging.Int("documents", len(docs)),
		logging.Int("vocabulary", vocab.Len()),
		logging.Int("pairs", len(pairs)),
		logging.String("mode", opts.Mode.String()),
	)
	return report, nil
}
