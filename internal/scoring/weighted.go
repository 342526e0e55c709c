package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/extract"
	"github.com/jonathan/resume-scorer/internal/feature"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Weighted category names. The similarity signal is informational only and
// carries no weight.
const (
	CategorySkills     = "skills_match"
	CategoryExperience = "experience_level"
	CategoryEducation  = "education"
	CategoryContact    = "contact_info"
	CategoryQuality    = "overall_quality"
	CategorySimilarity = "similarity_score"
)

// DefaultWeights is the recruiter-style weighting; the values sum to 1.0.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		CategorySkills:     0.4,
		CategoryExperience: 0.25,
		CategoryEducation:  0.15,
		CategoryContact:    0.1,
		CategoryQuality:    0.1,
	}
}

const weightedNeutral = 5.0

var (
	experienceReqRe = regexp.MustCompile(`(?i)years|experience|senior|junior|entry|level`)
	educationReqRe  = regexp.MustCompile(`(?i)bachelor|master|phd|degree|university|college`)
	metricsRe       = regexp.MustCompile(`(?i)\d+%|\d+\s*(?:users|customers|projects)`)
)

var actionVerbs = []string{"developed", "implemented", "managed", "led", "created", "designed", "built"}

var sectionHeaders = []string{"experience", "education", "skills"}

var techKeywords = []string{"python", "javascript", "react", "aws", "docker", "sql", "api"}

// WeightedEngine is the 0-10 per-category scorer: five independently bounded
// category scores combined under a fixed weight table, plus an informational
// similarity sub-signal from the feature pipeline. Every category computation
// degrades to a neutral 5.0 instead of propagating a failure.
type WeightedEngine struct {
	skills     []string
	recognizer extract.Recognizer
	weights    map[string]float64
}

// WeightedOptions configures engine construction. When VocabPath is set,
// construction fails if the vocabulary resource is missing.
type WeightedOptions struct {
	VocabPath string
	Weights   map[string]float64
}

// NewWeightedEngine constructs the engine.
func NewWeightedEngine(opts WeightedOptions) (*WeightedEngine, error) {
	skills := extract.DefaultSkills
	if opts.VocabPath != "" {
		vocab, err := extract.LoadVocabulary(opts.VocabPath)
		if err != nil {
			return nil, fmt.Errorf("weighted engine: %w", err)
		}
		skills = vocab.Skills()
	}

	weights := opts.Weights
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := validateWeights(weights); err != nil {
		return nil, fmt.Errorf("weighted engine: %w", err)
	}

	return &WeightedEngine{
		skills:     skills,
		recognizer: extract.NewRecognizer(),
		weights:    weights,
	}, nil
}

func validateWeights(weights map[string]float64) error {
	var sum float64
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("weight %q is negative", name)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.3f, want 1.0", sum)
	}
	return nil
}

// ScoreResume implements Engine.
func (e *WeightedEngine) ScoreResume(_ context.Context, resumeText, jobText string, skills []string) (b *types.Breakdown) {
	defer func() {
		if r := recover(); r != nil {
			b = errorBreakdown(types.EngineWeighted, e.weights, r)
		}
	}()

	skillList := e.skills
	if len(skills) > 0 {
		skillList = skills
	}

	var matched, missing []string
	skillsScore := safeCategory(CategorySkills, func() float64 {
		var s float64
		s, matched, missing = e.skillsScore(resumeText, jobText, skillList)
		return s
	})
	experienceScoreVal := safeCategory(CategoryExperience, func() float64 {
		return e.experienceScore(resumeText, jobText)
	})
	educationScoreVal := safeCategory(CategoryEducation, func() float64 {
		return e.educationScore(resumeText, jobText)
	})

	contact := extract.Contact(resumeText)
	contactScore := safeCategory(CategoryContact, func() float64 {
		return contactScoreFrom(contact)
	})
	qualityScore := safeCategory(CategoryQuality, func() float64 {
		return qualityScoreFrom(resumeText)
	})

	sim := feature.Similarity10(resumeText, jobText)

	scores := map[string]float64{
		CategorySkills:     skillsScore,
		CategoryExperience: experienceScoreVal,
		CategoryEducation:  educationScoreVal,
		CategoryContact:    contactScore,
		CategoryQuality:    qualityScore,
		CategorySimilarity: sim.Score,
	}

	final := 0.0
	for category, score := range scores {
		final += score * e.weights[category] // unweighted categories contribute 0
	}
	final = math.Round(final*10) / 10
	final = clamp(final, 0, 10)

	return &types.Breakdown{
		FinalScore:      final,
		Description:     weightedDescription(final),
		Engine:          types.EngineWeighted,
		Scores:          scores,
		Weights:         e.weights,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Contact:         contact,
		Degraded:        sim.Degraded,
		Recommendations: weightedRecommendations(scores),
	}
}

// safeCategory applies the degrade-to-neutral policy: a panic inside any
// category heuristic becomes the neutral score, not a failure.
func safeCategory(name string, fn func() float64) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("scoring: category failure, using neutral score", "category", name, "cause", r)
			score = weightedNeutral
		}
	}()
	return fn()
}

// skillsScore is the keyword-overlap ratio scaled to 0-10, neutral when the
// job description names no skills.
func (e *WeightedEngine) skillsScore(resumeText, jobText string, skills []string) (float64, []string, []string) {
	jobSkills := extract.MatchSkills(jobText, skills)
	if len(jobSkills) == 0 {
		return weightedNeutral, nil, nil
	}
	resumeSkills := extract.MatchSkills(resumeText, skills)
	matched, missing := partitionSkills(resumeSkills, jobSkills)

	score := float64(len(matched)) / float64(len(jobSkills)) * 10
	return clamp(score, 0, 10), matched, missing
}

// experienceScore tiers the resume's years of experience, neutral-high when
// the job text states no experience requirement.
func (e *WeightedEngine) experienceScore(resumeText, jobText string) float64 {
	if !experienceReqRe.MatchString(jobText) {
		return 7.0
	}
	years := extract.EstimateYears(resumeText, e.recognizer)
	switch {
	case years >= 5:
		return 9.0
	case years >= 3:
		return 7.5
	case years >= 1:
		return 6.0
	default:
		return 4.0
	}
}

// educationScore looks the resume's highest degree up in a tier table,
// neutral-high when the job text states no education requirement.
func (e *WeightedEngine) educationScore(resumeText, jobText string) float64 {
	if !educationReqRe.MatchString(jobText) {
		return 7.0
	}
	lower := strings.ToLower(resumeText)
	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate"):
		return 10.0
	case strings.Contains(lower, "master") || strings.Contains(lower, "mba"):
		return 9.0
	case strings.Contains(lower, "bachelor") || strings.Contains(lower, "b.s.") || strings.Contains(lower, "b.a.") || strings.Contains(lower, "b.tech"):
		return 8.0
	case educationReqRe.MatchString(resumeText):
		return 6.0
	default:
		return 3.0
	}
}

// contactScoreFrom sums weighted presence checks: name 2, email 3, phone 2,
// location 2, social 1, capped at 10.
func contactScoreFrom(c types.ContactInfo) float64 {
	score := 0.0
	if c.Name != "" {
		score += 2
	}
	if c.HasEmail {
		score += 3
	}
	if c.HasPhone {
		score += 2
	}
	if c.HasLocation {
		score += 2
	}
	if c.HasSocial {
		score += 1
	}
	return clamp(score, 0, 10)
}

// qualityScoreFrom applies additive formatting heuristics, base 5, capped
// at 10.
func qualityScoreFrom(resumeText string) float64 {
	score := 5.0
	lower := strings.ToLower(resumeText)

	wordCount := len(strings.Fields(resumeText))
	switch {
	case wordCount >= 100 && wordCount <= 500:
		score += 1
	case wordCount > 500:
		score += 0.5
	}

	for _, section := range sectionHeaders {
		if strings.Contains(lower, section) {
			score += 1
			break
		}
	}

	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			score += 1
			break
		}
	}

	if metricsRe.MatchString(lower) {
		score += 1
	}

	techCount := 0
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			techCount++
		}
	}
	if techCount >= 3 {
		score += 1
	}

	return clamp(score, 0, 10)
}

func weightedDescription(score float64) string {
	switch {
	case score >= 9.0:
		return "Excellent Match - Highly Recommended"
	case score >= 7.5:
		return "Very Good Match - Strong Candidate"
	case score >= 6.0:
		return "Good Match - Worth Considering"
	case score >= 4.5:
		return "Fair Match - May Need Training"
	case score >= 3.0:
		return "Poor Match - Not Recommended"
	default:
		return "Very Poor Match - Avoid"
	}
}

// deficiency threshold for recommendation generation
const weightedDeficient = 6.0

// weightedRecommendations emits one templated entry per deficient weighted
// category, in a fixed order; a fully healthy breakdown gets a single
// positive note.
func weightedRecommendations(scores map[string]float64) []string {
	templates := []struct {
		category string
		text     string
	}{
		{CategorySkills, "Add more relevant skills to match job requirements"},
		{CategoryExperience, "Highlight relevant work experience more prominently"},
		{CategoryEducation, "Consider adding relevant education or certifications"},
		{CategoryContact, "Add complete contact information (email, phone, location)"},
		{CategoryQuality, "Improve resume formatting and add specific achievements"},
	}

	var recs []string
	for _, tmpl := range templates {
		if scores[tmpl.category] < weightedDeficient {
			recs = append(recs, tmpl.text)
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Resume looks good! Consider adding more specific achievements")
	}
	return recs
}
