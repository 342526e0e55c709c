package extract

import (
	"log/slog"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Recognizer is the capability-gated entity backend consulted by the
// experience and education extractors. A nil Recognizer is valid and means
// the callers fall back to their regex heuristics.
type Recognizer interface {
	// DateEntities returns date-like strings found in text.
	DateEntities(text string) []string
	// DegreePhrase returns an entity-derived degree phrase, or "" when none
	// is found.
	DegreePhrase(text string) string
}

// NewRecognizer returns the richest recognizer available, or nil when the
// tagging backend cannot be initialized.
func NewRecognizer() Recognizer {
	if !taggerAvailable() {
		slog.Debug("recognizer: tagging backend unavailable")
		return nil
	}
	return proseRecognizer{}
}

// proseRecognizer derives entities from the tagger's token stream: cardinal
// numbers that look like calendar years count as date entities, and noun
// phrases containing a degree token yield the degree phrase.
type proseRecognizer struct{}

func (proseRecognizer) DateEntities(text string) []string {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil
	}
	var dates []string
	for _, tok := range doc.Tokens() {
		if tok.Tag != "CD" {
			continue
		}
		if fourDigitRe.MatchString(tok.Text) {
			dates = append(dates, tok.Text)
		}
	}
	return dates
}

func (proseRecognizer) DegreePhrase(text string) string {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return ""
	}
	for _, sent := range doc.Sentences() {
		lower := strings.ToLower(sent.Text)
		for _, degree := range degreeVocabulary {
			if strings.Contains(lower, degree) {
				return degree
			}
		}
	}
	return ""
}
