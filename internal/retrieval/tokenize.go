// Package retrieval implements the question answering core: member detection
// from free text, lexical relevance scoring, and bounded context-window
// selection over an immutable corpus snapshot.
package retrieval

import (
	"strings"
	"unicode"
)

// stopwords is the fixed closed list dropped during tokenization. It is part
// of the scoring contract, not a tunable.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "to": {}, "for": {}, "on": {}, "in": {}, "and": {}, "of": {},
	"my": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "have": {}, "has": {},
	"this": {}, "that": {}, "next": {}, "last": {}, "with": {}, "at": {}, "please": {},
	"can": {}, "you": {}, "me": {}, "it": {}, "i": {}, "we": {}, "our": {}, "from": {},
}

// Tokenize lowercases text and splits it into its set of content words.
// Word characters are unicode letters, digits and underscore; any other rune
// is a boundary. Stopwords are removed. Empty or punctuation-only input
// yields an empty set. No stemming, no synonym expansion.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if _, stop := stopwords[tok]; !stop {
			tokens[tok] = struct{}{}
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
