package config

import (
	"fmt"
	"os"
	"strings"

	"docsim/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizeInput(); err != nil {
		return err
	}
	c.normalizeNormalizer()
	c.normalizeStats()
	if err := c.normalizeReport(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeInput() error {
	if value, ok := os.LookupEnv("DOCSIM_INPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Input.Dir = value
	}
	if strings.TrimSpace(c.Input.Dir) == "" {
		c.Input.Dir = defaultInputDir
	}
	var err error
	if c.Input.Dir, err = expandPath(strings.TrimSpace(c.Input.Dir)); err != nil {
		return fmt.Errorf("input.dir: %w", err)
	}
	exts := make([]string, 0, len(c.Input.Extensions))
	seen := make(map[string]struct{}, len(c.Input.Extensions))
	for _, ext := range c.Input.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if ext != "*" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	c.Input.Extensions = exts
	if c.Input.MaxFileBytes == 0 {
		c.Input.MaxFileBytes = defaultMaxFileBytes
	}
	return nil
}

func (c *Config) normalizeNormalizer() {
	langs := make([]string, 0, len(c.Normalizer.Languages))
	for _, lang := range c.Normalizer.Languages {
		if strings.EqualFold(strings.TrimSpace(lang), LanguageNone) {
			langs = []string{LanguageNone}
			break
		}
		langs = append(langs, lang)
	}
	if len(langs) == 1 && langs[0] == LanguageNone {
		c.Normalizer.Languages = langs
	} else {
		c.Normalizer.Languages = language.NormalizeList(langs)
	}
	c.Normalizer.Stopwords = trimList(c.Normalizer.Stopwords)
	c.Normalizer.ExtraStopwords = trimList(c.Normalizer.ExtraStopwords)
	c.Normalizer.CaseLanguage = strings.TrimSpace(c.Normalizer.CaseLanguage)
	if c.Normalizer.CaseLanguage == "" {
		c.Normalizer.CaseLanguage = defaultCaseLanguage
	}
}

func (c *Config) normalizeStats() {
	c.Stats.TFDenominator = strings.ToLower(strings.TrimSpace(c.Stats.TFDenominator))
	if c.Stats.TFDenominator == "" {
		c.Stats.TFDenominator = defaultTFDenominator
	}
}

func (c *Config) normalizeReport() error {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}
	sections := make([]string, 0, len(c.Report.Sections))
	for _, s := range c.Report.Sections {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "all" {
			sections = AllSections()
			break
		}
		if s != "" {
			sections = append(sections, s)
		}
	}
	c.Report.Sections = sections
	if c.Report.Precision == 0 {
		c.Report.Precision = defaultPrecision
	}
	if strings.TrimSpace(c.Report.Output) != "" {
		var err error
		if c.Report.Output, err = expandPath(strings.TrimSpace(c.Report.Output)); err != nil {
			return fmt.Errorf("report.output: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}

func trimList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
