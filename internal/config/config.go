package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Input contains document discovery settings.
type Input struct {
	Dir           string   `toml:"dir"`
	Extensions    []string `toml:"extensions"`
	IncludeHidden bool     `toml:"include_hidden"`
	MaxFileBytes  int64    `toml:"max_file_bytes"`
}

// Normalizer contains text normalization settings.
type Normalizer struct {
	// Languages selects built-in stopword lists, merged in order. "none"
	// disables the built-in lists.
	Languages []string `toml:"languages"`
	// Punctuation lists every character deleted before splitting.
	Punctuation string `toml:"punctuation"`
	// Stopwords replaces the built-in lists entirely when non-empty.
	Stopwords []string `toml:"stopwords"`
	// ExtraStopwords is appended to whichever list is in effect.
	ExtraStopwords []string `toml:"extra_stopwords"`
	// CaseLanguage is the BCP 47 tag used for lowercasing ("und" is neutral).
	CaseLanguage string `toml:"case_language"`
}

// Similarity contains vector comparison settings.
type Similarity struct {
	// SkipFirstTerm reproduces historical reports that left the first
	// vocabulary term out of every norm and dot product.
	SkipFirstTerm bool `toml:"skip_first_term"`
	// SkipDegenerate reports pairs with an all-zero vector instead of failing.
	SkipDegenerate bool `toml:"skip_degenerate"`
}

// Stats contains tf/idf settings.
type Stats struct {
	TFDenominator string `toml:"tf_denominator"`
}

// Report contains output settings.
type Report struct {
	Format    string   `toml:"format"`
	Sections  []string `toml:"sections"`
	Precision int      `toml:"precision"`
	Output    string   `toml:"output"`
	Degrees   bool     `toml:"degrees"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for docsim.
//
// Configuration sections by subsystem:
//   - Input: where documents are read from
//   - Normalizer: punctuation, stopwords and case folding
//   - Similarity: index mode and degenerate-vector handling
//   - Stats: tf denominator
//   - Report: output format, sections and destination
//   - Logging: log format and level
type Config struct {
	Input      Input      `toml:"input"`
	Normalizer Normalizer `toml:"normalizer"`
	Similarity Similarity `toml:"similarity"`
	Stats      Stats      `toml:"stats"`
	Report     Report     `toml:"report"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and enum fields normalized. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Override applies fn to a copy of c, then normalizes and validates the
// result. c is left untouched when the override is invalid.
func (c *Config) Override(fn func(*Config)) (*Config, error) {
	next := *c
	next.Input.Extensions = slices.Clone(c.Input.Extensions)
	next.Normalizer.Languages = slices.Clone(c.Normalizer.Languages)
	next.Report.Sections = slices.Clone(c.Report.Sections)
	fn(&next)
	if err := next.normalize(); err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("docsim.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
