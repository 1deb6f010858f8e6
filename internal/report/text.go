package report

import (
	"fmt"
	"io"
	"strings"

	"docsim/internal/analysis"
	"docsim/internal/config"
)

const bannerWidth = 76

// textWriter accumulates the first write error so rendering code can stay linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) banner(title string, colorize bool) {
	rule := strings.Repeat("=", bannerWidth)
	pad := (bannerWidth - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}
	t.printf("\n%s\n%s%s\n%s\n\n",
		paint(rule, ansiBlue, colorize),
		strings.Repeat(" ", pad),
		paint(title, ansiBlue, colorize),
		paint(rule, ansiBlue, colorize),
	)
}

func renderText(w io.Writer, r *analysis.Report, opts Options) error {
	t := &textWriter{w: w}
	names := r.Names()

	if opts.Source != "" {
		t.banner("Input location: "+opts.Source, opts.Colorize)
	}
	t.banner("Input files", opts.Colorize)
	for _, name := range names {
		t.printf("%s\n", name)
	}

	if opts.wants(config.SectionVectors) {
		t.banner("Frequency vectors", opts.Colorize)
		t.printf("vocabulary (%d terms): %s\n\n", len(r.Vocabulary), strings.Join(r.Vocabulary, " "))
		for _, doc := range r.Documents {
			t.printf("%s: %v\n", doc.Name, []int(doc.Vector))
		}
	}

	if opts.wants(config.SectionSimilarity) {
		t.banner("Cosine similarities", opts.Colorize)
		t.printf("mode: %s, unit: %s\n\n", r.Mode, angleUnit(opts))
		if len(r.Pairs) == 0 {
			t.printf("only one document, nothing to compare\n")
		}
		for _, p := range r.Pairs {
			angle, ok := displayAngle(p, opts)
			if !ok {
				t.printf("Angle between %s and %s: %s\n", names[p.A], names[p.B],
					paint("undefined (zero vector)", ansiYellow, opts.Colorize))
				continue
			}
			t.printf("Angle between %s and %s: %s\n", names[p.A], names[p.B], opts.formatFloat(angle))
		}
	}

	if opts.wants(config.SectionTF) {
		t.banner("Term frequencies (tf)", opts.Colorize)
		t.printf("denominator: %s\n", r.TFDenominator)
		for _, doc := range r.Documents {
			t.printf("\n== %s ==\n", doc.Name)
			for _, w := range doc.TF {
				t.printf("tf(%s) = %s\n", w.Term, opts.formatFloat(w.Weight))
			}
		}
	}

	if opts.wants(config.SectionIDF) {
		t.banner("Inverse document frequencies (idf)", opts.Colorize)
		for _, w := range r.IDF {
			t.printf("idf(%s) = %s\n", w.Term, opts.formatFloat(w.Weight))
		}
	}
	return t.err
}
