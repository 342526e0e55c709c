package semantic

import (
	"context"
	"log/slog"
)

// Scorer computes [0,1] similarity between two text spans. A nil Scorer or a
// Scorer without a backend returns the neutral 0.0 signal; backend failures
// never propagate to the caller.
type Scorer struct {
	embedder Embedder
}

// NewScorer wraps an embedder. A nil embedder yields a scorer that always
// returns the neutral signal.
func NewScorer(embedder Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Available reports whether a real embedding backend is wired in.
func (s *Scorer) Available() bool {
	return s != nil && s.embedder != nil
}

// Similarity returns cosine similarity of the two texts' embeddings clamped
// to [0,1], or 0.0 when the backend is unavailable or fails.
func (s *Scorer) Similarity(ctx context.Context, a, b string) float64 {
	if !s.Available() || a == "" || b == "" {
		return 0.0
	}

	va, err := s.embedder.Embed(ctx, a)
	if err != nil {
		slog.Debug("semantic: embed failed", "error", err)
		return 0.0
	}
	vb, err := s.embedder.Embed(ctx, b)
	if err != nil {
		slog.Debug("semantic: embed failed", "error", err)
		return 0.0
	}

	sim := Cosine(va, vb)
	if sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}

// Close releases the backend, if any.
func (s *Scorer) Close() error {
	if s == nil || s.embedder == nil {
		return nil
	}
	return s.embedder.Close()
}
