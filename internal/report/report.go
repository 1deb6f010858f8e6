package report

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"docsim/internal/analysis"
	"docsim/internal/config"
)

// Options controls rendering.
type Options struct {
	Format    string
	Sections  []string
	Precision int
	// Degrees prints angles in degrees instead of radians.
	Degrees bool
	// Colorize wraps section headers in ANSI colors (text and table only).
	Colorize bool
	// Source is the input location shown in the text header.
	Source string
}

// OptionsFromConfig builds render options from the report section.
func OptionsFromConfig(cfg config.Report) Options {
	return Options{
		Format:    cfg.Format,
		Sections:  cfg.Sections,
		Precision: cfg.Precision,
		Degrees:   cfg.Degrees,
	}
}

func (o Options) wants(section string) bool {
	if len(o.Sections) == 0 {
		return section != config.SectionVectors
	}
	return slices.Contains(o.Sections, section)
}

func (o Options) precision() int {
	if o.Precision <= 0 {
		return 6
	}
	return o.Precision
}

func (o Options) formatFloat(v float64) string {
	return fmt.Sprintf("%.*f", o.precision(), v)
}

// Render writes r to w in the configured format.
func Render(w io.Writer, r *analysis.Report, opts Options) error {
	if r == nil {
		return fmt.Errorf("render report: nil report")
	}
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", config.FormatText:
		return renderText(w, r, opts)
	case config.FormatTable:
		return renderTables(w, r, opts)
	case config.FormatJSON:
		return renderJSON(w, r, opts)
	case config.FormatYAML:
		return renderYAML(w, r, opts)
	default:
		return fmt.Errorf("render report: unsupported format %q", opts.Format)
	}
}

// Bytes renders r into memory.
func Bytes(r *analysis.Report, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
