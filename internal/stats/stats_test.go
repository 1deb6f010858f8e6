package stats

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"docsim/internal/textutil"
	"docsim/internal/vectorspace"
)

const eps = 1e-12

func TestTermFrequencyDenominators(t *testing.T) {
	seq := textutil.Tokens{"ay", "llorona", "ay", "ay", "negro"}

	// 3 distinct terms, 5 tokens.
	tests := []struct {
		denom TFDenominator
		want  map[string]float64
	}{
		{DistinctTerms, map[string]float64{"ay": 1, "llorona": 1.0 / 3, "negro": 1.0 / 3}},
		{TotalTokens, map[string]float64{"ay": 0.6, "llorona": 0.2, "negro": 0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.denom.String(), func(t *testing.T) {
			got := TermFrequency(seq, tt.denom)
			if len(got) != len(tt.want) {
				t.Fatalf("TermFrequency() = %v, want %v", got, tt.want)
			}
			for term, want := range tt.want {
				if math.Abs(got[term]-want) > eps {
					t.Errorf("tf(%q) = %v, want %v", term, got[term], want)
				}
			}
		})
	}
}

func TestTermFrequencyDistinctCanExceedOne(t *testing.T) {
	tf := TermFrequency(textutil.Tokens{"a", "a", "a", "b"}, DistinctTerms)
	if tf["a"] != 1.5 {
		t.Errorf("tf(a) = %v, want 1.5", tf["a"])
	}
	total := TermFrequency(textutil.Tokens{"a", "a", "a", "b"}, TotalTokens)
	var sum float64
	for _, w := range total {
		sum += w
	}
	if math.Abs(sum-1) > eps {
		t.Errorf("total-token tf sums to %v, want 1", sum)
	}
}

func TestTermFrequencyEmpty(t *testing.T) {
	if got := TermFrequency(nil, DistinctTerms); len(got) != 0 {
		t.Errorf("TermFrequency(nil) = %v, want empty", got)
	}
	if got := OrderedTermFrequency(textutil.Tokens{}, TotalTokens); got == nil || len(got) != 0 {
		t.Errorf("OrderedTermFrequency(empty) = %#v, want empty slice", got)
	}
}

func TestOrderedTermFrequencyOrder(t *testing.T) {
	got := OrderedTermFrequency(textutil.Tokens{"c", "a", "c", "b"}, DistinctTerms)
	terms := make([]string, len(got))
	for i, tw := range got {
		terms[i] = tw.Term
	}
	if !reflect.DeepEqual(terms, []string{"c", "a", "b"}) {
		t.Errorf("order = %q, want [c a b]", terms)
	}
}

func TestInverseDocumentFrequencyCatDog(t *testing.T) {
	corpus := []textutil.Tokens{{"cat", "sat"}, {"dog", "sat"}}
	idf, err := InverseDocumentFrequency(corpus)
	if err != nil {
		t.Fatalf("InverseDocumentFrequency: %v", err)
	}
	if math.Abs(idf["sat"]-math.Log(2.0/3.0)) > eps {
		t.Errorf("idf(sat) = %v, want ln(2/3)", idf["sat"])
	}
	if math.Abs(idf["sat"]-(-0.405465108108)) > 1e-9 {
		t.Errorf("idf(sat) = %v, want about -0.405", idf["sat"])
	}
	if idf["cat"] != 0 || idf["dog"] != 0 {
		t.Errorf("idf(cat), idf(dog) = %v, %v, want 0", idf["cat"], idf["dog"])
	}

	ordered, err := OrderedIDF(corpus)
	if err != nil {
		t.Fatalf("OrderedIDF: %v", err)
	}
	if len(ordered) != 3 || ordered[0].Term != "cat" || ordered[1].Term != "sat" || ordered[2].Term != "dog" {
		t.Errorf("OrderedIDF() = %+v, want vocabulary order", ordered)
	}
}

func TestInverseDocumentFrequencyEmpty(t *testing.T) {
	if _, err := InverseDocumentFrequency(nil); !errors.Is(err, vectorspace.ErrEmptyCorpus) {
		t.Fatalf("InverseDocumentFrequency(nil) error = %v, want ErrEmptyCorpus", err)
	}
	idf, err := InverseDocumentFrequency([]textutil.Tokens{{}})
	if err != nil || len(idf) != 0 {
		t.Fatalf("InverseDocumentFrequency(empty doc) = %v, %v, want empty map", idf, err)
	}
}

func TestIDFMonotonic(t *testing.T) {
	for n := 1; n <= 12; n++ {
		prev := math.Inf(1)
		for df := 1; df <= n; df++ {
			got := IDF(n, df)
			if got > prev {
				t.Fatalf("IDF(%d, %d) = %v exceeds IDF(%d, %d) = %v", n, df, got, n, df-1, prev)
			}
			prev = got
		}
	}
}

func TestDocumentFrequencyCountsDocumentsOnce(t *testing.T) {
	df := DocumentFrequency([]textutil.Tokens{{"a", "a", "b"}, {"a"}, {}})
	if df["a"] != 2 || df["b"] != 1 {
		t.Errorf("DocumentFrequency() = %v, want a:2 b:1", df)
	}
}

func TestParseTFDenominator(t *testing.T) {
	tests := []struct {
		in      string
		want    TFDenominator
		wantErr bool
	}{
		{"", DistinctTerms, false},
		{"distinct", DistinctTerms, false},
		{" TOTAL ", TotalTokens, false},
		{"tokens", DistinctTerms, true},
	}
	for _, tt := range tests {
		got, err := ParseTFDenominator(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseTFDenominator(%q) = %v, %v", tt.in, got, err)
		}
	}
}
