package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func (s *stubEmbedder) Close() error { return nil }

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
		{"length mismatch", []float32{1}, []float32{1, 1}, 0.0},
		{"empty", nil, nil, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_NoBackend(t *testing.T) {
	assert.Equal(t, 0.0, NewScorer(nil).Similarity(context.Background(), "a", "b"))

	var s *Scorer
	assert.Equal(t, 0.0, s.Similarity(context.Background(), "a", "b"))
}

func TestSimilarity_BackendFailureIsNeutral(t *testing.T) {
	s := NewScorer(&stubEmbedder{err: errors.New("quota exceeded")})

	assert.Equal(t, 0.0, s.Similarity(context.Background(), "resume", "job"))
}

func TestSimilarity_ClampsToUnitRange(t *testing.T) {
	s := NewScorer(&stubEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {-1, 0},
	}})

	got := s.Similarity(context.Background(), "a", "b")

	assert.Equal(t, 0.0, got)
}

func TestSimilarity_SimilarTexts(t *testing.T) {
	s := NewScorer(&stubEmbedder{vectors: map[string][]float32{
		"a": {0.9, 0.1, 0},
		"b": {0.8, 0.2, 0},
	}})

	got := s.Similarity(context.Background(), "a", "b")

	assert.Greater(t, got, 0.9)
	assert.LessOrEqual(t, got, 1.0)
}

func TestSimilarity_EmptyText(t *testing.T) {
	s := NewScorer(&stubEmbedder{vectors: map[string][]float32{}})

	assert.Equal(t, 0.0, s.Similarity(context.Background(), "", "job"))
}

func TestNewGeminiEmbedder_RequiresKey(t *testing.T) {
	_, err := NewGeminiEmbedder(context.Background(), "", "")

	assert.Error(t, err)
}
