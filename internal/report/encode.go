package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"docsim/internal/analysis"
)

func renderJSON(w io.Writer, r *analysis.Report, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newReportView(r, opts)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, r *analysis.Report, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newReportView(r, opts)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return nil
}
