package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docsim/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose input directory lives in a per-test temp
// directory. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Input.Dir = filepath.Join(base, "input")
	cfgVal.Logging.Level = "error"
	if err := os.MkdirAll(cfgVal.Input.Dir, 0o755); err != nil {
		t.Fatalf("mkdir input dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDocuments writes name/text pairs into the config's input directory.
func WithDocuments(docs map[string]string) ConfigOption {
	return func(b *configBuilder) {
		WriteCorpus(b.t, b.cfg.Input.Dir, docs)
	}
}

// WithStopwords replaces the built-in stopword lists with an explicit list.
func WithStopwords(words ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Normalizer.Stopwords = words
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Input.Dir)
}

// WriteConfigFile writes the fields of cfg that tests commonly change as a
// TOML file at path.
func WriteConfigFile(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "[input]\ndir = %q\n\n", cfg.Input.Dir)
	fmt.Fprintf(&b, "[normalizer]\nlanguages = %s\n", tomlList(cfg.Normalizer.Languages))
	if len(cfg.Normalizer.Stopwords) > 0 {
		fmt.Fprintf(&b, "stopwords = %s\n", tomlList(cfg.Normalizer.Stopwords))
	}
	fmt.Fprintf(&b, "\n[logging]\nlevel = %q\n", cfg.Logging.Level)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func tomlList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
