package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Basic(t *testing.T) {
	got := Normalize([]string{"Built   REST APIs in Python, 2021!"})

	assert.Len(t, got, 1)
	assert.Equal(t, "built rest apis python", got[0])
}

func TestNormalize_DropsStopwordsAndShortTokens(t *testing.T) {
	got := NormalizeOne("I am a developer with the team")

	assert.NotContains(t, strings.Fields(got), "the")
	assert.NotContains(t, strings.Fields(got), "with")
	assert.NotContains(t, strings.Fields(got), "i")
	assert.Contains(t, strings.Fields(got), "developer")
	assert.Contains(t, strings.Fields(got), "team")
}

func TestNormalize_StripsPunctuationAndDigits(t *testing.T) {
	got := NormalizeOne("C++/Go, SQL-92; node.js (v18)")

	assert.NotContains(t, got, "+")
	assert.NotContains(t, got, ".")
	assert.NotContains(t, got, "9")
}

func TestNormalize_PreservesLengthAndOrder(t *testing.T) {
	in := []string{"First Document", "", "Third Document"}
	got := Normalize(in)

	assert.Len(t, got, len(in))
	assert.Equal(t, "", got[1])
	assert.Contains(t, got[0], "first")
	assert.Contains(t, got[2], "third")
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Equal(t, []string{""}, Normalize([]string{""}))
}

func TestStopwords_ContainsCoreEnglish(t *testing.T) {
	sw := Stopwords()

	for _, w := range []string{"the", "and", "with", "is"} {
		_, ok := sw[w]
		assert.True(t, ok, "expected stopword %q", w)
	}
	_, ok := sw["python"]
	assert.False(t, ok)
}

func TestEnsureCorpus_Idempotent(t *testing.T) {
	EnsureCorpus()
	first := Stopwords()
	EnsureCorpus()

	assert.Equal(t, len(first), len(Stopwords()))
}
