package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	prose "github.com/jdkato/prose/v2"

	"github.com/jonathan/resume-scorer/internal/textproc"
)

const minKeywordLen = 4

// KeywordExtractor produces a deduplicated set of informative lexical tokens
// from free text. Implementations differ in recall: the tagger-backed path
// filters stopwords and punctuation, the pattern fallback does not.
type KeywordExtractor interface {
	Extract(text string) map[string]struct{}
}

// NewKeywordExtractor probes the linguistic tagger once and returns the
// richest extractor available. The probe runs at most once per process.
func NewKeywordExtractor() KeywordExtractor {
	if taggerAvailable() {
		return &TaggerExtractor{stopwords: textproc.Stopwords()}
	}
	slog.Debug("keywords: linguistic tagger unavailable, using pattern fallback")
	return PatternExtractor{}
}

var (
	taggerProbeOnce sync.Once
	taggerOK        bool
)

func taggerAvailable() bool {
	taggerProbeOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				taggerOK = false
			}
		}()
		_, err := prose.NewDocument("probe", prose.WithExtraction(false))
		taggerOK = err == nil
	})
	return taggerOK
}

// TaggerExtractor tokenizes with the linguistic tagger, dropping stopwords,
// punctuation, and tokens shorter than four characters. Token text is
// lowercased before inclusion.
type TaggerExtractor struct {
	stopwords map[string]struct{}
}

// Extract implements KeywordExtractor.
func (e *TaggerExtractor) Extract(text string) map[string]struct{} {
	keywords := make(map[string]struct{})
	if text == "" {
		return keywords
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		slog.Debug("keywords: tagger failed, using pattern fallback", "error", err)
		return PatternExtractor{}.Extract(text)
	}

	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if utf8.RuneCountInString(word) < minKeywordLen {
			continue
		}
		if isPunctTag(tok.Tag) || !hasLetter(word) {
			continue
		}
		if _, stop := e.stopwords[word]; stop {
			continue
		}
		keywords[word] = struct{}{}
	}
	return keywords
}

// punctuation and symbol tags emitted by the Penn Treebank tagset
func isPunctTag(tag string) bool {
	switch tag {
	case ".", ",", ":", "``", "''", "(", ")", "#", "$", "SYM", "-LRB-", "-RRB-":
		return true
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

var wordRe = regexp.MustCompile(`\b\w{4,}\b`)

// PatternExtractor is the degraded path used when no tagger is available:
// every word of length >= 4, lowercased, with no stopword filtering.
type PatternExtractor struct{}

// Extract implements KeywordExtractor.
func (PatternExtractor) Extract(text string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		keywords[w] = struct{}{}
	}
	return keywords
}
