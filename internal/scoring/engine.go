// Package scoring combines the extracted signals into a final explainable
// score with a per-signal breakdown and templated recommendations.
package scoring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Engine scores one resume against one job description. Implementations are
// safe for concurrent use: they hold only read-only state after construction.
type Engine interface {
	// ScoreResume never returns an error; total failure is reported through
	// the breakdown's error field with a final score of 0.
	ScoreResume(ctx context.Context, resumeText, jobText string, skills []string) *types.Breakdown
}

// errorBreakdown is the minimal, well-formed result for the total-failure
// path: callers detect it via the error field or the 0 score.
func errorBreakdown(engine string, weights map[string]float64, cause any) *types.Breakdown {
	slog.Error("scoring: total pipeline failure", "engine", engine, "cause", cause)
	return &types.Breakdown{
		FinalScore:      0,
		Description:     "Error in scoring",
		Engine:          engine,
		Scores:          map[string]float64{},
		Weights:         weights,
		Recommendations: []string{"Error occurred during scoring"},
		Err:             fmt.Sprint(cause),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
