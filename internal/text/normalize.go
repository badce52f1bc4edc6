package text

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

// nonLetter matches everything outside lowercase letters and whitespace.
// Applied after case folding, so digits and punctuation become spaces.
var nonLetter = regexp.MustCompile(`[^a-z\s]`)

var stopwords = DefaultStopwords()

// Clean normalizes free text into a stemmed token stream: case folding,
// punctuation and digit removal, whitespace tokenization, stopword removal,
// then Snowball (Porter2) English stemming. The result joins surviving stems
// with single spaces. Deterministic: the same input always yields the same
// byte-identical output.
func Clean(raw string) string {
	lowered := nonLetter.ReplaceAllString(strings.ToLower(raw), " ")

	var stems []string
	for _, tok := range strings.Fields(lowered) {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		stems = append(stems, english.Stem(tok, true))
	}
	return strings.Join(stems, " ")
}
