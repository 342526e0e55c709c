package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternExtractor_LengthFilter(t *testing.T) {
	got := PatternExtractor{}.Extract("Go SQL Python dev experience")

	assert.Contains(t, got, "python")
	assert.Contains(t, got, "experience")
	assert.NotContains(t, got, "go")
	assert.NotContains(t, got, "sql")
	assert.NotContains(t, got, "dev")
}

func TestPatternExtractor_LowercasesAndDedupes(t *testing.T) {
	got := PatternExtractor{}.Extract("Python PYTHON python")

	assert.Len(t, got, 1)
	assert.Contains(t, got, "python")
}

func TestPatternExtractor_Empty(t *testing.T) {
	assert.Empty(t, PatternExtractor{}.Extract(""))
}

func TestTaggerExtractor_FiltersStopwordsAndPunct(t *testing.T) {
	e := NewKeywordExtractor()

	got := e.Extract("Designed distributed systems with Python, Kubernetes. These were reliable.")

	assert.Contains(t, got, "python")
	assert.Contains(t, got, "kubernetes")
	assert.Contains(t, got, "distributed")
	// Stopwords stay out on the tagger path even when long enough.
	if _, ok := e.(*TaggerExtractor); ok {
		assert.NotContains(t, got, "these")
		assert.NotContains(t, got, "were")
	}
	for kw := range got {
		assert.GreaterOrEqual(t, len(kw), minKeywordLen)
	}
}

func TestTaggerExtractor_EmptyText(t *testing.T) {
	e := NewKeywordExtractor()

	assert.Empty(t, e.Extract(""))
}

func TestNewKeywordExtractor_Deterministic(t *testing.T) {
	e := NewKeywordExtractor()
	text := "Implemented scalable microservices using Docker and Terraform"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}
