package report

import (
	"math"
	"time"

	"docsim/internal/analysis"
	"docsim/internal/config"
	"docsim/internal/stats"
	"docsim/internal/vectorspace"
)

type reportView struct {
	RunID             string           `json:"run_id" yaml:"run_id"`
	GeneratedAt       time.Time        `json:"generated_at" yaml:"generated_at"`
	Mode              string           `json:"mode" yaml:"mode"`
	TFDenominator     string           `json:"tf_denominator" yaml:"tf_denominator"`
	AngleUnit         string           `json:"angle_unit" yaml:"angle_unit"`
	Documents         []documentView   `json:"documents" yaml:"documents"`
	Vocabulary        []string         `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty"`
	Pairs             []pairView       `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	IDF               []termWeightView `json:"idf,omitempty" yaml:"idf,omitempty"`
	DocumentFrequency map[string]int   `json:"document_frequency,omitempty" yaml:"document_frequency,omitempty"`
}

type documentView struct {
	Name   string             `json:"name" yaml:"name"`
	Tokens int                `json:"tokens" yaml:"tokens"`
	Vector vectorspace.Vector `json:"vector,omitempty" yaml:"vector,omitempty,flow"`
	TF     []termWeightView   `json:"tf,omitempty" yaml:"tf,omitempty"`
}

type pairView struct {
	A          string   `json:"a" yaml:"a"`
	B          string   `json:"b" yaml:"b"`
	Angle      *float64 `json:"angle" yaml:"angle"`
	Degenerate bool     `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

type termWeightView struct {
	Term   string  `json:"term" yaml:"term"`
	Weight float64 `json:"weight" yaml:"weight"`
}

func newReportView(r *analysis.Report, opts Options) reportView {
	view := reportView{
		RunID:         r.RunID,
		GeneratedAt:   r.GeneratedAt,
		Mode:          r.Mode.String(),
		TFDenominator: r.TFDenominator.String(),
		AngleUnit:     angleUnit(opts),
		Documents:     make([]documentView, len(r.Documents)),
	}
	for i, doc := range r.Documents {
		dv := documentView{Name: doc.Name, Tokens: len(doc.Tokens)}
		if opts.wants(config.SectionVectors) {
			dv.Vector = doc.Vector
		}
		if opts.wants(config.SectionTF) {
			dv.TF = weights(doc.TF)
		}
		view.Documents[i] = dv
	}
	if opts.wants(config.SectionVectors) {
		view.Vocabulary = r.Vocabulary
	}
	if opts.wants(config.SectionSimilarity) {
		names := r.Names()
		view.Pairs = make([]pairView, len(r.Pairs))
		for i, p := range r.Pairs {
			pv := pairView{A: names[p.A], B: names[p.B], Degenerate: p.Degenerate}
			if angle, ok := displayAngle(p, opts); ok {
				pv.Angle = &angle
			}
			view.Pairs[i] = pv
		}
	}
	if opts.wants(config.SectionIDF) {
		view.IDF = weights(r.IDF)
		view.DocumentFrequency = r.DocumentFrequency
	}
	return view
}

func weights(in []stats.TermWeight) []termWeightView {
	out := make([]termWeightView, len(in))
	for i, w := range in {
		out[i] = termWeightView{Term: w.Term, Weight: w.Weight}
	}
	return out
}

// displayAngle returns the pair angle in the configured unit. ok is false for
// degenerate pairs.
func displayAngle(p vectorspace.Pair, opts Options) (float64, bool) {
	if p.Degenerate || math.IsNaN(p.Angle) {
		return 0, false
	}
	if opts.Degrees {
		return vectorspace.Degrees(p.Angle), true
	}
	return p.Angle, true
}

func angleUnit(opts Options) string {
	if opts.Degrees {
		return "degrees"
	}
	return "radians"
}
