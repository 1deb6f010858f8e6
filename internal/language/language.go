package language

import (
	"strings"

	textlang "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
	tag     textlang.Tag
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}, textlang.English},
	{"es", "spa", "", "Spanish", []string{"spanish", "español", "espanol"}, textlang.Spanish},
	{"fr", "fra", "fre", "French", []string{"french"}, textlang.French},
	{"de", "deu", "ger", "German", []string{"german"}, textlang.German},
	{"it", "ita", "", "Italian", []string{"italian"}, textlang.Italian},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}, textlang.Portuguese},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}, textlang.Dutch},
	{"tr", "tur", "", "Turkish", []string{"turkish"}, textlang.Turkish},
	{"az", "aze", "", "Azerbaijani", []string{"azerbaijani"}, textlang.Azerbaijani},
	{"lt", "lit", "", "Lithuanian", []string{"lithuanian"}, textlang.Lithuanian},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts any recognized language code or word to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input.
// If the input is already a 2-letter code (even if unknown), it passes through.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Tag returns the BCP 47 tag used for case folding. Registered codes map to
// their canonical tag; anything else is parsed as BCP 47 and falls back to
// textlang.Und, which applies the language-neutral Unicode mappings.
func Tag(code string) textlang.Tag {
	if e := lookup(code); e != nil {
		return e.tag
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return textlang.Und
	}
	tag, err := textlang.Parse(code)
	if err != nil {
		return textlang.Und
	}
	return tag
}

// NormalizeList deduplicates and normalizes a list of language codes to ISO 639-1.
func NormalizeList(languages []string) []string {
	if len(languages) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(languages))
	seen := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		trimmed := strings.ToLower(strings.TrimSpace(lang))
		if trimmed == "" {
			continue
		}
		if len(trimmed) > 2 {
			if mapped := ToISO2(trimmed); mapped != "" {
				trimmed = mapped
			}
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
