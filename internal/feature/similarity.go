package feature

import (
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/jonathan/resume-scorer/internal/textproc"
)

const (
	cosineWeight  = 0.7
	featureWeight = 0.3
	neutralScore  = 5.0
)

// Result is the 0-10 similarity sub-signal. Degraded marks scores that came
// from a fallback path instead of the full pipeline; fallback values are
// randomized and must only be relied on for their range.
type Result struct {
	Score    float64
	Degraded bool
}

// Similarity10 runs the full feature pipeline for one resume/job pair:
// stopword normalization, joint TF-IDF, dimensionality reduction,
// per-feature scaling, cosine plus
// variance-weighted feature scoring, combined 0.7/0.3 and scaled to 0-10.
// It never fails; each stage substitutes its documented fallback instead.
func Similarity10(resumeText, jobText string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("feature: pipeline panic, using neutral fallback", "panic", r)
			res = Result{Score: neutralScore, Degraded: true}
		}
	}()

	const rows = 2 // one resume row, one job row
	degraded := false

	docs := textproc.Normalize([]string{resumeText, jobText})
	m, _, err := BuildTFIDF(docs)
	if err != nil {
		slog.Debug("feature: tfidf failed, using random fallback matrix", "error", err)
		m = randomMatrix(rows, reducedDims)
		degraded = true
	}

	red, err := Reduce(m, reducedDims)
	if err != nil {
		slog.Debug("feature: reduction failed, using random fallback matrix", "error", err)
		red = randomMatrix(rows, reducedDims)
		degraded = true
	}
	red = fitRows(red, rows)

	resumeVec := mat.Row(nil, 0, red)
	jobVec := mat.Row(nil, 1, red)

	cos := scaledCosine(resumeVec, jobVec, red)
	feat := featureBased(resumeVec, jobVec, red)

	combined := cosineWeight*cos + featureWeight*feat
	combined = clamp01(combined)

	score := combined * 10
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return Result{Score: neutralScore, Degraded: true}
	}
	return Result{Score: score, Degraded: degraded}
}

// fitRows pads with zero rows or truncates so the matrix has exactly want
// rows. Row-count mismatches only arise from upstream fallback errors.
func fitRows(m *mat.Dense, want int) *mat.Dense {
	rows, cols := m.Dims()
	if rows == want {
		return m
	}
	out := mat.NewDense(want, cols, nil)
	for i := 0; i < want && i < rows; i++ {
		out.SetRow(i, mat.Row(nil, i, m))
	}
	return out
}

// scaledCosine computes cosine similarity after per-feature scaling by the
// column standard deviation (zero deviations scale by 1). Centering is
// skipped: with a single row per group, mean subtraction collapses both
// vectors. The result is clamped to [0,1].
func scaledCosine(a, b []float64, m *mat.Dense) float64 {
	std := columnStd(m)
	var dot, na, nb float64
	for j := range a {
		x, y := a[j]/std[j], b[j]/std[j]
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp01(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

// featureBased computes a variance-weighted dot product normalized by its own
// maximum. With one resume/job pair the maximum is the single score itself,
// so any positive score normalizes to 1.
func featureBased(a, b []float64, m *mat.Dense) float64 {
	variance := columnVariance(m)
	var total float64
	for _, v := range variance {
		total += v
	}
	if total == 0 {
		return 0
	}

	var score float64
	for j := range a {
		score += a[j] * b[j] * (variance[j] / total)
	}
	if score > 0 {
		return 1.0
	}
	return 0
}

func columnVariance(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	variance := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var mean float64
		for i := 0; i < rows; i++ {
			mean += m.At(i, j)
		}
		mean /= float64(rows)
		var sum float64
		for i := 0; i < rows; i++ {
			d := m.At(i, j) - mean
			sum += d * d
		}
		variance[j] = sum / float64(rows)
	}
	return variance
}

func columnStd(m *mat.Dense) []float64 {
	variance := columnVariance(m)
	std := make([]float64, len(variance))
	for j, v := range variance {
		std[j] = math.Sqrt(v)
		if std[j] == 0 {
			std[j] = 1
		}
	}
	return std
}

// randomMatrix fills the fallback shape with uniform values in [0.1,0.9],
// matching the pipeline's randomized-but-plausible degradation policy.
func randomMatrix(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 0.1 + rand.Float64()*0.8
	}
	return mat.NewDense(rows, cols, data)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
