// Package textproc cleans raw document text into the canonical lowercase
// token form used by the frequency and keyword based signals.
package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	extraSpaceRe = regexp.MustCompile(`\s+`)
	nonLetterRe  = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// Normalize returns one normalized string per input, same length and order:
// collapsed whitespace, letters-and-spaces-only content, lowercase, with
// stopwords and single-character tokens removed. It is total; if anything
// goes wrong internally the original inputs are returned unchanged.
func Normalize(texts []string) (out []string) {
	defer func() {
		if r := recover(); r != nil {
			out = texts
		}
	}()

	sw := Stopwords()
	out = make([]string, len(texts))
	for i, raw := range texts {
		out[i] = normalizeOne(raw, sw)
	}
	return out
}

// NormalizeOne is the single-document convenience form of Normalize.
func NormalizeOne(text string) string {
	return Normalize([]string{text})[0]
}

func normalizeOne(raw string, sw map[string]struct{}) string {
	text := extraSpaceRe.ReplaceAllString(raw, " ")
	text = nonLetterRe.ReplaceAllString(text, " ")
	text = strings.ToLower(strings.TrimSpace(text))

	var kept []string
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		if _, stop := sw[word]; stop {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
