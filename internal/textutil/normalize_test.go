package textutil

import (
	"reflect"
	"strings"
	"testing"
	"unicode"

	textlang "golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		punctuation string
		stopwords   []string
		want        Tokens
	}{
		{
			name:      "drops stopwords",
			input:     "the cat sat",
			stopwords: []string{"the"},
			want:      Tokens{"cat", "sat"},
		},
		{
			name:  "lowercases",
			input: "The Cat SAT",
			want:  Tokens{"the", "cat", "sat"},
		},
		{
			name:        "punctuation merges adjacent letters",
			input:       "don't stop-me now.",
			punctuation: DefaultPunctuation,
			want:        Tokens{"dont", "stopme", "now"},
		},
		{
			name:        "punctuation surrounded by spaces disappears",
			input:       "uno , dos",
			punctuation: DefaultPunctuation,
			want:        Tokens{"uno", "dos"},
		},
		{
			name:        "spanish marks",
			input:       "¡Ay de mí, Llorona! ¿Qué?",
			punctuation: DefaultPunctuation,
			stopwords:   spanishStopwords,
			want:        Tokens{"ay", "mí", "llorona", "qué"},
		},
		{
			name:      "stopword match happens after lowercasing",
			input:     "La LA la",
			stopwords: []string{"la"},
			want:      Tokens{},
		},
		{
			name:      "uppercase stopword entries do not match",
			input:     "The end",
			stopwords: []string{"The"},
			want:      Tokens{"the", "end"},
		},
		{
			name:  "duplicates and order preserved",
			input: "b a b\tc\na",
			want:  Tokens{"b", "a", "b", "c", "a"},
		},
		{
			name:        "punctuation only",
			input:       "!!! ... ???",
			punctuation: DefaultPunctuation,
			want:        Tokens{},
		},
		{
			name:  "empty",
			input: "",
			want:  Tokens{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, NewPunctuationSet(tt.punctuation), NewStopwordSet(tt.stopwords...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeOutputIsClean(t *testing.T) {
	punctuation := NewPunctuationSet(DefaultPunctuation)
	stopwords := NewStopwordSet(spanishStopwords...)
	texts := []string{
		"Todos me dicen el negro, Llorona, negro pero cariñoso.",
		"¿Quién es? -- (Nadie) [sabe] {nada}; \"dijo\" @ella #hoy 100% & más_aún ~fin\\",
		"ÁRBOL Árbol árbol",
	}
	for _, text := range texts {
		for _, token := range Normalize(text, punctuation, stopwords) {
			if token == "" {
				t.Errorf("empty token from %q", text)
			}
			for _, r := range token {
				if punctuation.Contains(r) {
					t.Errorf("token %q still contains punctuation %q", token, r)
				}
				if unicode.IsUpper(r) {
					t.Errorf("token %q is not lowercase", token)
				}
			}
			if stopwords.Contains(token) {
				t.Errorf("token %q is a stopword", token)
			}
		}
	}
}

func TestNormalizerCaseLanguage(t *testing.T) {
	none := NewPunctuationSet("")
	empty := NewStopwordSet()

	neutral := NewNormalizer(none, empty, textlang.Und).Normalize("DİYARBAKIR")
	turkish := NewNormalizer(none, empty, textlang.Turkish).Normalize("DİYARBAKIR")

	if len(neutral) != 1 || len(turkish) != 1 {
		t.Fatalf("expected single tokens, got %q and %q", neutral, turkish)
	}
	if turkish[0] != "diyarbakır" {
		t.Errorf("turkish folding = %q, want %q", turkish[0], "diyarbakır")
	}
	if neutral[0] == turkish[0] {
		t.Errorf("expected language-specific folding to differ, both %q", neutral[0])
	}
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	got := NormalizeAll(
		[]string{"the cat sat", "", "the dog sat"},
		NewPunctuationSet(""),
		NewStopwordSet("the"),
	)
	want := []Tokens{{"cat", "sat"}, {}, {"dog", "sat"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeAll() = %q, want %q", got, want)
	}
}

func TestTokensDistinctAndCount(t *testing.T) {
	tokens := Tokens{"llorona", "ay", "llorona", "negro", "ay", "llorona"}
	if got, want := tokens.Distinct(), []string{"llorona", "ay", "negro"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Distinct() = %q, want %q", got, want)
	}
	if got := tokens.Count("llorona"); got != 3 {
		t.Errorf("Count(llorona) = %d, want 3", got)
	}
	if got := tokens.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
}

func TestPunctuationSet(t *testing.T) {
	set := NewPunctuationSet("!!?¿")
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
	if set.String() != "!?¿" {
		t.Errorf("String() = %q, want %q", set.String(), "!?¿")
	}
	if got := set.Strip("¿qué?!"); got != "qué" {
		t.Errorf("Strip() = %q, want %q", got, "qué")
	}
	if got := NewPunctuationSet("").Strip("a.b"); got != "a.b" {
		t.Errorf("empty set Strip() = %q, want unchanged", got)
	}
	for _, r := range DefaultPunctuation {
		if !strings.ContainsRune(NewPunctuationSet(DefaultPunctuation).String(), r) {
			t.Errorf("default set lost %q", r)
		}
	}
}
