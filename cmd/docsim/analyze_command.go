package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"docsim/internal/analysis"
	"docsim/internal/config"
	"docsim/internal/corpus"
	"docsim/internal/logging"
	"docsim/internal/report"
)

type analyzeFlags struct {
	format        string
	output        string
	sections      []string
	tfDenominator string
	languages     []string
	skipFirstTerm bool
	degrees       bool
	watch         bool
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Compare documents and report angles, tf and idf",
		Long: `Analyze reads every document from the configured input directory, or from
the given paths, and reports the cosine angle between each pair of documents
along with per-document term frequency and corpus inverse document frequency.

A single directory argument replaces the configured input directory. Any other
arguments are read as individual files, in the order given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := base.Override(func(c *config.Config) {
				applyAnalyzeFlags(cmd, &flags, c)
			})
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts, err := analysis.OptionsFromConfig(cfg)
			if err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths = []string{cfg.Input.Dir}
			}
			run := &analyzeRun{cmd: cmd, cfg: cfg, opts: opts, logger: logger, source: sourceLabel(paths)}

			if flags.watch {
				return run.watch(cmd.Context(), paths)
			}
			docs, err := corpus.Load(cmd.Context(), paths, loadOptions(cfg))
			if err != nil {
				return err
			}
			return run.analyze(cmd.Context(), docs)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "Report format (text, table, json, yaml)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringSliceVar(&flags.sections, "sections", nil, "Report sections (vectors, similarity, tf, idf, all)")
	cmd.Flags().StringVar(&flags.tfDenominator, "tf-denominator", "", "Term frequency denominator (distinct, total)")
	cmd.Flags().StringSliceVar(&flags.languages, "stopwords-lang", nil, "Built-in stopword lists to apply (es, en, none)")
	cmd.Flags().BoolVar(&flags.skipFirstTerm, "skip-first-term", false, "Leave the first vocabulary term out of norms and dot products")
	cmd.Flags().BoolVar(&flags.degrees, "degrees", false, "Report angles in degrees")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Re-run the analysis whenever the input directory changes")
	return cmd
}

func applyAnalyzeFlags(cmd *cobra.Command, flags *analyzeFlags, c *config.Config) {
	changed := cmd.Flags().Changed
	if changed("format") {
		c.Report.Format = flags.format
	}
	if changed("output") {
		c.Report.Output = flags.output
	}
	if changed("sections") {
		c.Report.Sections = flags.sections
	}
	if changed("tf-denominator") {
		c.Stats.TFDenominator = flags.tfDenominator
	}
	if changed("stopwords-lang") {
		c.Normalizer.Languages = flags.languages
		c.Normalizer.Stopwords = nil
	}
	if changed("skip-first-term") {
		c.Similarity.SkipFirstTerm = flags.skipFirstTerm
	}
	if changed("degrees") {
		c.Report.Degrees = flags.degrees
	}
}

func loadOptions(cfg *config.Config) corpus.Options {
	return corpus.Options{
		Extensions:    cfg.Input.Extensions,
		IncludeHidden: cfg.Input.IncludeHidden,
		MaxFileBytes:  cfg.Input.MaxFileBytes,
	}
}

func sourceLabel(paths []string) string {
	if len(paths) == 1 {
		if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
			return paths[0]
		}
	}
	return ""
}

type analyzeRun struct {
	cmd    *cobra.Command
	cfg    *config.Config
	opts   analysis.Options
	logger *slog.Logger
	source string
}

func (r *analyzeRun) analyze(ctx context.Context, docs []corpus.Document) error {
	result, err := analysis.Run(ctx, docs, r.opts, r.logger)
	if err != nil {
		return err
	}

	renderOpts := report.OptionsFromConfig(r.cfg.Report)
	renderOpts.Source = r.source

	if r.cfg.Report.Output == "" {
		renderOpts.Colorize = report.ShouldColorize(r.cmd.OutOrStdout())
		return report.Render(r.cmd.OutOrStdout(), result, renderOpts)
	}

	data, err := report.Bytes(result, renderOpts)
	if err != nil {
		return err
	}
	if err := report.WriteFile(r.cfg.Report.Output, data); err != nil {
		return err
	}
	r.logger.Info("report written",
		logging.String("path", r.cfg.Report.Output),
		logging.String(logging.FieldRunID, result.RunID),
	)
	return nil
}

func (r *analyzeRun) watch(parent context.Context, paths []string) error {
	if r.source == "" {
		return fmt.Errorf("--watch needs a single directory, got %s", strings.Join(paths, ", "))
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return corpus.Watch(ctx, r.source, loadOptions(r.cfg), corpus.DefaultDebounce, r.logger,
		func(ctx context.Context, docs []corpus.Document, err error) error {
			if err == nil {
				err = r.analyze(ctx, docs)
			}
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				// Load and analysis failures keep the watch alive.
				logging.WarnWithContext(r.logger, "analysis failed; waiting for next change", "watch_run_failed",
					logging.Error(err),
					logging.String(logging.FieldImpact, "report not refreshed"),
				)
			}
			return nil
		})
}
