package config

import "docsim/internal/textutil"

const (
	defaultConfigPath    = "~/.config/docsim/config.toml"
	defaultInputDir      = "InputTexts"
	defaultMaxFileBytes  = 8 << 20
	defaultLanguage      = "es"
	defaultCaseLanguage  = "und"
	defaultTFDenominator = "distinct"
	defaultReportFormat  = "text"
	defaultPrecision     = 6
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Report section names.
const (
	SectionVectors    = "vectors"
	SectionSimilarity = "similarity"
	SectionTF         = "tf"
	SectionIDF        = "idf"
)

// Report formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// LanguageNone disables built-in stopword lists.
const LanguageNone = "none"

// AllSections lists every report section in rendering order.
func AllSections() []string {
	return []string{SectionVectors, SectionSimilarity, SectionTF, SectionIDF}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Dir:          defaultInputDir,
			Extensions:   []string{".txt"},
			MaxFileBytes: defaultMaxFileBytes,
		},
		Normalizer: Normalizer{
			Languages:    []string{defaultLanguage},
			Punctuation:  textutil.DefaultPunctuation,
			CaseLanguage: defaultCaseLanguage,
		},
		Stats: Stats{
			TFDenominator: defaultTFDenominator,
		},
		Report: Report{
			Format:    defaultReportFormat,
			Sections:  []string{SectionSimilarity, SectionTF, SectionIDF},
			Precision: defaultPrecision,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
