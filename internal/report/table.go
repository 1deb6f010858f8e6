package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"docsim/internal/analysis"
	"docsim/internal/config"
)

// ColumnAlignment selects how a table column is aligned.
type ColumnAlignment int

const (
	AlignLeft ColumnAlignment = iota
	AlignRight
)

// Table renders rows with the rounded go-pretty style used across the CLI.
func Table(headers []string, rows [][]string, aligns []ColumnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func sectionHeader(title string, colorize bool) string {
	return paint("== "+title+" ==", ansiBlue, colorize)
}

func renderTables(w io.Writer, r *analysis.Report, opts Options) error {
	t := &textWriter{w: w}
	names := r.Names()

	if opts.wants(config.SectionVectors) {
		headers := append([]string{"Term"}, names...)
		aligns := []ColumnAlignment{AlignLeft}
		for range names {
			aligns = append(aligns, AlignRight)
		}
		rows := make([][]string, len(r.Vocabulary))
		for i, term := range r.Vocabulary {
			row := []string{term}
			for _, doc := range r.Documents {
				row = append(row, strconv.Itoa(doc.Vector[i]))
			}
			rows[i] = row
		}
		t.printf("%s\n%s\n\n", sectionHeader("Frequency vectors", opts.Colorize), Table(headers, rows, aligns))
	}

	if opts.wants(config.SectionSimilarity) && len(r.Pairs) > 0 {
		rows := make([][]string, len(r.Pairs))
		for i, p := range r.Pairs {
			value := "-"
			if angle, ok := displayAngle(p, opts); ok {
				value = opts.formatFloat(angle)
			}
			rows[i] = []string{names[p.A], names[p.B], value}
		}
		header := fmt.Sprintf("Cosine similarities (%s, %s)", r.Mode, angleUnit(opts))
		t.printf("%s\n%s\n\n", sectionHeader(header, opts.Colorize),
			Table([]string{"Document A", "Document B", "Angle"}, rows, []ColumnAlignment{AlignLeft, AlignLeft, AlignRight}))
	}

	if opts.wants(config.SectionTF) {
		var rows [][]string
		for _, doc := range r.Documents {
			for _, w := range doc.TF {
				rows = append(rows, []string{doc.Name, w.Term, opts.formatFloat(w.Weight)})
			}
		}
		header := fmt.Sprintf("Term frequencies (%s)", r.TFDenominator)
		t.printf("%s\n%s\n\n", sectionHeader(header, opts.Colorize),
			Table([]string{"Document", "Term", "tf"}, rows, []ColumnAlignment{AlignLeft, AlignLeft, AlignRight}))
	}

	if opts.wants(config.SectionIDF) {
		rows := make([][]string, len(r.IDF))
		for i, w := range r.IDF {
			rows[i] = []string{w.Term, strconv.Itoa(r.DocumentFrequency[w.Term]), opts.formatFloat(w.Weight)}
		}
		t.printf("%s\n%s\n", sectionHeader("Inverse document frequencies", opts.Colorize),
			Table([]string{"Term", "Documents", "idf"}, rows, []ColumnAlignment{AlignLeft, AlignRight, AlignRight}))
	}
	return t.err
}
