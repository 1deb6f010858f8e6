package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"docsim/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateNormalizer(); err != nil {
		return err
	}
	if err := c.validateStats(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateInput() error {
	if strings.TrimSpace(c.Input.Dir) == "" {
		return errors.New("input.dir must be set")
	}
	if len(c.Input.Extensions) == 0 {
		return errors.New("input.extensions must list at least one extension (use \"*\" for any)")
	}
	if c.Input.MaxFileBytes < 0 {
		return errors.New("input.max_file_bytes must be positive")
	}
	return nil
}

func (c *Config) validateNormalizer() error {
	if len(c.Normalizer.Stopwords) > 0 {
		return nil
	}
	for _, lang := range c.Normalizer.Languages {
		if lang == LanguageNone {
			continue
		}
		if _, ok := textutil.BuiltinStopwords(lang); !ok {
			return fmt.Errorf("normalizer.languages: no built-in stopword list for %q (available: %s)",
				lang, strings.Join(textutil.BuiltinLanguages(), ", "))
		}
	}
	return nil
}

func (c *Config) validateStats() error {
	switch c.Stats.TFDenominator {
	case "distinct", "total":
		return nil
	default:
		return fmt.Errorf("stats.tf_denominator must be \"distinct\" or \"total\", got %q", c.Stats.TFDenominator)
	}
}

func (c *Config) validateReport() error {
	switch c.Report.Format {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("report.format: unsupported value %q", c.Report.Format)
	}
	if len(c.Report.Sections) == 0 {
		return errors.New("report.sections must list at least one section")
	}
	known := AllSections()
	for _, s := range c.Report.Sections {
		if !slices.Contains(known, s) {
			return fmt.Errorf("report.sections: unknown section %q (known: %s)", s, strings.Join(known, ", "))
		}
	}
	if c.Report.Precision < 0 || c.Report.Precision > 17 {
		return errors.New("report.precision must be between 0 and 17")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
