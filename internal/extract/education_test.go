package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighestDegree_VocabularyPriority(t *testing.T) {
	// Bachelor appears first in the text but the doctorate outranks it.
	got := HighestDegree("Bachelor of Science, later PhD in Physics", nil)

	assert.Equal(t, "phd", got)
}

func TestHighestDegree_Abbreviations(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"B.Tech or equivalent", "b.tech"},
		{"Bachelor of Technology in CS", "bachelor"},
		{"completed an MBA program", "mba"},
		{"M.Sc in Statistics", "m.sc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HighestDegree(tt.text, nil), "text: %s", tt.text)
	}
}

func TestHighestDegree_NoMatch(t *testing.T) {
	assert.Equal(t, "", HighestDegree("self-taught engineer", nil))
	assert.Equal(t, "", HighestDegree("", nil))
}

func TestHighestDegree_RecognizerShortCircuits(t *testing.T) {
	rec := stubRecognizer{degree: "master"}

	got := HighestDegree("Bachelor of Arts", rec)

	assert.Equal(t, "master", got)
}

func TestHighestDegree_RecognizerEmptyFallsThrough(t *testing.T) {
	rec := stubRecognizer{}

	got := HighestDegree("Bachelor of Arts", rec)

	assert.Equal(t, "bachelor", got)
}

func TestDegreeRelated(t *testing.T) {
	assert.True(t, DegreeRelated("bachelor", "bachelor"))
	assert.True(t, DegreeRelated("b.tech", "tech"))
	assert.True(t, DegreeRelated("master", "masters degree"))
	assert.True(t, DegreeRelated("bachelor", "b.tech"))
	assert.True(t, DegreeRelated("msc", "m.tech"))
	assert.False(t, DegreeRelated("bachelor", "master"))
	assert.False(t, DegreeRelated("", "master"))
}
