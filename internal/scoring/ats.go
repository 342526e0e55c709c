package scoring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/extract"
	"github.com/jonathan/resume-scorer/internal/semantic"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Maximum contribution of each ATS sub-score; they sum to 100.
const (
	atsMaxSkills   = 35.0
	atsMaxKeywords = 15.0
	atsMaxExp      = 15.0
	atsMaxEdu      = 10.0
	atsMaxContact  = 10.0
	atsMaxSemantic = 15.0

	atsPartialExp = 8.0
	atsPartialEdu = 5.0

	maxListedGaps = 5
)

// ATSEngine is the 0-100 applicant-tracking-style scorer: six bounded
// sub-scores summed directly.
type ATSEngine struct {
	vocab      *extract.Vocabulary
	keywords   extract.KeywordExtractor
	recognizer extract.Recognizer
	semantic   *semantic.Scorer
}

// ATSOptions configures engine construction. When VocabPath is set the
// vocabulary is loaded from that CSV and construction fails if it is missing;
// otherwise Skills or the built-in default list is used.
type ATSOptions struct {
	VocabPath string
	Skills    []string
	Semantic  *semantic.Scorer
}

// NewATSEngine constructs the engine, probing the optional linguistic
// backends once.
func NewATSEngine(opts ATSOptions) (*ATSEngine, error) {
	var vocab *extract.Vocabulary
	switch {
	case opts.VocabPath != "":
		v, err := extract.LoadVocabulary(opts.VocabPath)
		if err != nil {
			return nil, fmt.Errorf("ats engine: %w", err)
		}
		vocab = v
	case len(opts.Skills) > 0:
		vocab = extract.NewVocabulary(opts.Skills)
	default:
		vocab = extract.NewVocabulary(extract.DefaultSkills)
	}

	return &ATSEngine{
		vocab:      vocab,
		keywords:   extract.NewKeywordExtractor(),
		recognizer: extract.NewRecognizer(),
		semantic:   opts.Semantic,
	}, nil
}

// ScoreResume implements Engine.
func (e *ATSEngine) ScoreResume(ctx context.Context, resumeText, jobText string, skills []string) (b *types.Breakdown) {
	defer func() {
		if r := recover(); r != nil {
			b = errorBreakdown(types.EngineATS, nil, r)
		}
	}()

	vocab := e.vocab
	if len(skills) > 0 {
		vocab = extract.NewVocabulary(skills)
	}

	resumeSkills := vocab.Match(resumeText)
	jobSkills := vocab.Match(jobText)
	matched, missing := partitionSkills(resumeSkills, jobSkills)

	skillsScore := 0.0
	if len(jobSkills) > 0 {
		skillsScore = float64(len(matched)) / float64(len(jobSkills)) * atsMaxSkills
	}

	resumeKW := e.keywords.Extract(resumeText)
	jobKW := e.keywords.Extract(jobText)
	matchedKW, missingKW := partitionKeywords(resumeKW, jobKW)

	keywordScore := 0.0
	if len(jobKW) > 0 {
		keywordScore = float64(len(matchedKW)) / float64(len(jobKW)) * atsMaxKeywords
	}

	resumeYears := extract.EstimateYears(resumeText, e.recognizer)
	jobYears := extract.EstimateYears(jobText, e.recognizer)
	expScore := experienceScore(resumeYears, jobYears)

	resumeDegree := extract.HighestDegree(resumeText, e.recognizer)
	jobDegree := extract.HighestDegree(jobText, e.recognizer)
	eduScore := educationScore(resumeDegree, jobDegree)

	contact := extract.Contact(resumeText)
	contactScore := contactCompleteness(contact) * atsMaxContact

	similarity := e.semantic.Similarity(ctx, resumeText, jobText)
	semanticScore := math.Floor(similarity * atsMaxSemantic)

	final := math.Round(skillsScore + keywordScore + expScore + eduScore + contactScore + semanticScore)
	final = clamp(final, 0, 100)

	return &types.Breakdown{
		FinalScore:  final,
		Description: atsDescription(final),
		Engine:      types.EngineATS,
		Scores: map[string]float64{
			"skills_score":   skillsScore,
			"keyword_score":  keywordScore,
			"exp_score":      expScore,
			"edu_score":      eduScore,
			"contact_score":  contactScore,
			"semantic_score": semanticScore,
		},
		MatchedSkills:      matched,
		MissingSkills:      missing,
		MatchedKeywords:    matchedKW,
		MissingKeywords:    missingKW,
		ResumeYears:        resumeYears,
		JobYears:           jobYears,
		ResumeDegree:       resumeDegree,
		JobDegree:          jobDegree,
		Contact:            contact,
		SemanticSimilarity: similarity,
		Recommendations: atsRecommendations(
			missing, missingKW, expScore, eduScore, contactScore, semanticScore),
	}
}

// experienceScore: full credit when the resume meets a stated requirement,
// partial when it falls short of one or when the job states none but the
// resume shows some, zero otherwise.
func experienceScore(resumeYears, jobYears int) float64 {
	switch {
	case jobYears > 0 && resumeYears >= jobYears:
		return atsMaxExp
	case jobYears > 0 && resumeYears > 0:
		return atsPartialExp
	case jobYears == 0 && resumeYears > 0:
		return atsPartialExp
	default:
		return 0
	}
}

func educationScore(resumeDegree, jobDegree string) float64 {
	switch {
	case resumeDegree == "":
		return 0
	case extract.DegreeRelated(resumeDegree, jobDegree):
		return atsMaxEdu
	default:
		return atsPartialEdu
	}
}

// contactCompleteness counts the three independent flags as a fraction.
func contactCompleteness(c types.ContactInfo) float64 {
	present := 0
	for _, ok := range []bool{c.HasEmail, c.HasPhone, c.HasSocial} {
		if ok {
			present++
		}
	}
	return float64(present) / 3.0
}

func atsDescription(score float64) string {
	switch {
	case score >= 80:
		return "Excellent Match - Highly Recommended"
	case score >= 60:
		return "Very Good Match - Strong Candidate"
	case score >= 45:
		return "Good Match - Worth Considering"
	case score >= 30:
		return "Fair Match - May Need Training"
	case score >= 15:
		return "Poor Match - Not Recommended"
	default:
		return "Very Poor Match - Avoid"
	}
}

// atsRecommendations appends one templated entry per deficient signal, in a
// fixed priority order.
func atsRecommendations(missingSkills, missingKW []string, expScore, eduScore, contactScore, semanticScore float64) []string {
	var recs []string

	if len(missingSkills) > 0 {
		recs = append(recs, "Add missing skills to your resume: "+strings.Join(topN(missingSkills, maxListedGaps), ", "))
	}
	if len(missingKW) > 0 {
		recs = append(recs, "Include job-specific keywords: "+strings.Join(topN(missingKW, maxListedGaps), ", "))
	}
	if expScore < atsMaxExp {
		recs = append(recs, "Highlight relevant years of experience to meet the job requirement")
	}
	if eduScore < atsMaxEdu {
		recs = append(recs, "List a degree matching the education requirement")
	}
	if contactScore < atsMaxContact {
		recs = append(recs, "Add complete contact information (email, phone, LinkedIn)")
	}
	if semanticScore < 10 {
		recs = append(recs, "Align resume wording with the job description's terminology")
	}
	return recs
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func partitionSkills(resumeSkills, jobSkills []string) (matched, missing []string) {
	inResume := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		inResume[s] = struct{}{}
	}
	for _, s := range jobSkills {
		if _, ok := inResume[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func partitionKeywords(resumeKW, jobKW map[string]struct{}) (matched, missing []string) {
	for kw := range jobKW {
		if _, ok := resumeKW[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}
