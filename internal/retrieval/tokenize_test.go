package retrieval

import (
	"sort"
	"testing"
)

func sortedTokens(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"lowercases and splits on punctuation",
			"What seat does Layla prefer?",
			[]string{"does", "layla", "prefer", "seat", "what"},
		},
		{
			"removes stopwords",
			"I have a seat on the plane",
			[]string{"plane", "seat"},
		},
		{
			"empty input",
			"",
			[]string{},
		},
		{
			"punctuation only",
			"?!, ... --",
			[]string{},
		},
		{
			"digits and underscore are word characters",
			"flight_42 departs at 9pm",
			[]string{"9pm", "departs", "flight_42"},
		},
		{
			"duplicates collapse into a set",
			"seat seat SEAT",
			[]string{"seat"},
		},
		{
			"unicode letters survive",
			"café rendezvous",
			[]string{"café", "rendezvous"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedTokens(Tokenize(tt.text))
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
				}
			}
		})
	}
}
