package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docsim/internal/language"
	"docsim/internal/report"
	"docsim/internal/textutil"
)

type stopwordListJSON struct {
	Language string   `json:"language"`
	Name     string   `json:"name"`
	Words    []string `json:"words"`
}

func newStopwordsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "stopwords [lang]",
		Short:       "List built-in stopword lists",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := textutil.BuiltinLanguages()
			if len(args) == 1 {
				code := language.ToISO2(args[0])
				if _, ok := textutil.BuiltinStopwords(code); !ok {
					return fmt.Errorf("no built-in stopword list for %q", args[0])
				}
				langs = []string{code}
			}

			lists := make([]stopwordListJSON, 0, len(langs))
			for _, lang := range langs {
				set, _ := textutil.BuiltinStopwords(lang)
				lists = append(lists, stopwordListJSON{
					Language: lang,
					Name:     language.DisplayName(lang),
					Words:    set.Words(),
				})
			}

			if asJSON {
				return writeJSON(cmd, lists)
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				rows := make([][]string, len(lists[0].Words))
				for i, w := range lists[0].Words {
					rows[i] = []string{w}
				}
				fmt.Fprintln(out, report.Table([]string{lists[0].Name + " stopwords"}, rows, nil))
				return nil
			}
			rows := make([][]string, len(lists))
			for i, l := range lists {
				rows[i] = []string{l.Language, l.Name, strconv.Itoa(len(l.Words))}
			}
			fmt.Fprintln(out, report.Table(
				[]string{"Code", "Language", "Words"},
				rows,
				[]report.ColumnAlignment{report.AlignLeft, report.AlignLeft, report.AlignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
