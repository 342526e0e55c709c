package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func newTestWeightedEngine(t *testing.T) *WeightedEngine {
	t.Helper()
	engine, err := NewWeightedEngine(WeightedOptions{})
	require.NoError(t, err)
	return engine
}

func TestWeightedScoreResume(t *testing.T) {
	engine := newTestWeightedEngine(t)

	b := engine.ScoreResume(context.Background(), sampleResume, sampleJob, nil)
	require.NotNil(t, b)
	require.False(t, b.Failed())

	assert.Equal(t, types.EngineWeighted, b.Engine)
	assert.Contains(t, b.MatchedSkills, "python")
	assert.Contains(t, b.MatchedSkills, "data-analysis")
	assert.Contains(t, b.MatchedSkills, "machine-learning")
	assert.Greater(t, b.FinalScore, 0.0)
	assert.LessOrEqual(t, b.FinalScore, 10.0)
	assert.NotEmpty(t, b.Description)
	assert.Equal(t, DefaultWeights(), b.Weights)

	// 3 years against a job that states an experience requirement
	assert.Equal(t, 7.5, b.Scores[CategoryExperience])
	// bachelor's degree against a stated education requirement
	assert.Equal(t, 8.0, b.Scores[CategoryEducation])

	for _, category := range []string{CategorySkills, CategoryExperience, CategoryEducation, CategoryContact, CategoryQuality, CategorySimilarity} {
		score, ok := b.Scores[category]
		require.True(t, ok, category)
		assert.GreaterOrEqual(t, score, 0.0, category)
		assert.LessOrEqual(t, score, 10.0, category)
	}
}

func TestWeightedScoreResumeNeutralOnEmpty(t *testing.T) {
	engine := newTestWeightedEngine(t)

	b := engine.ScoreResume(context.Background(), "", "", nil)
	require.NotNil(t, b)
	require.False(t, b.Failed())

	// skills 5.0 neutral, experience and education 7.0 neutral, contact 0,
	// quality base 5.0: weighted sum is 5.3 regardless of the similarity
	// fallback, which carries no weight.
	assert.Equal(t, weightedNeutral, b.Scores[CategorySkills])
	assert.Equal(t, 7.0, b.Scores[CategoryExperience])
	assert.Equal(t, 7.0, b.Scores[CategoryEducation])
	assert.Equal(t, 0.0, b.Scores[CategoryContact])
	assert.Equal(t, 5.0, b.Scores[CategoryQuality])
	assert.Equal(t, 5.3, b.FinalScore)
	assert.True(t, b.Degraded, "empty inputs cannot build a term matrix")
}

func TestWeightedScoreResumeSkillOverride(t *testing.T) {
	engine := newTestWeightedEngine(t)

	resume := "Shipped erlang services in production."
	job := "Need erlang and elixir experience."

	b := engine.ScoreResume(context.Background(), resume, job, []string{"erlang", "elixir"})
	require.NotNil(t, b)
	assert.Equal(t, []string{"erlang"}, b.MatchedSkills)
	assert.Equal(t, []string{"elixir"}, b.MissingSkills)
	assert.Equal(t, 5.0, b.Scores[CategorySkills])
}

func TestNewWeightedEngineWeightValidation(t *testing.T) {
	cases := []struct {
		name    string
		weights map[string]float64
		wantErr bool
	}{
		{"default weights", nil, false},
		{"custom weights summing to one", map[string]float64{CategorySkills: 0.5, CategoryQuality: 0.5}, false},
		{"weights not summing to one", map[string]float64{CategorySkills: 0.5}, true},
		{"negative weight", map[string]float64{CategorySkills: 1.5, CategoryQuality: -0.5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWeightedEngine(WeightedOptions{Weights: tc.weights})
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewWeightedEngineMissingVocabFile(t *testing.T) {
	_, err := NewWeightedEngine(WeightedOptions{VocabPath: "testdata/does-not-exist.csv"})
	require.Error(t, err)
}

func TestWeightedSkillsScore(t *testing.T) {
	engine := newTestWeightedEngine(t)
	skills := []string{"python", "sql", "docker", "kubernetes"}

	t.Run("job without skills is neutral", func(t *testing.T) {
		score, matched, missing := engine.skillsScore("python everywhere", "we hire nice people", skills)
		assert.Equal(t, weightedNeutral, score)
		assert.Empty(t, matched)
		assert.Empty(t, missing)
	})

	t.Run("full overlap", func(t *testing.T) {
		score, matched, missing := engine.skillsScore("python sql docker kubernetes", "python sql docker kubernetes", skills)
		assert.Equal(t, 10.0, score)
		assert.Len(t, matched, 4)
		assert.Empty(t, missing)
	})

	t.Run("half overlap", func(t *testing.T) {
		score, matched, missing := engine.skillsScore("python sql", "python sql docker kubernetes", skills)
		assert.Equal(t, 5.0, score)
		assert.ElementsMatch(t, []string{"python", "sql"}, matched)
		assert.ElementsMatch(t, []string{"docker", "kubernetes"}, missing)
	})
}

func TestWeightedExperienceScore(t *testing.T) {
	engine := newTestWeightedEngine(t)

	cases := []struct {
		name   string
		resume string
		job    string
		want   float64
	}{
		{"no requirement stated", "8 years of work", "we make widgets", 7.0},
		{"five plus years", "6 years of backend work", "senior role, 5 years experience", 9.0},
		{"three to five years", "3 years of backend work", "3+ years experience", 7.5},
		{"one to three years", "1 year of backend work", "entry level role", 6.0},
		{"no experience found", "recent graduate", "2 years experience required", 4.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.experienceScore(tc.resume, tc.job))
		})
	}
}

func TestWeightedEducationScore(t *testing.T) {
	engine := newTestWeightedEngine(t)
	job := "bachelor degree required"

	cases := []struct {
		name   string
		resume string
		job    string
		want   float64
	}{
		{"no requirement stated", "PhD in physics", "we make widgets", 7.0},
		{"doctorate", "PhD in physics", job, 10.0},
		{"masters", "Master of Science", job, 9.0},
		{"mba", "MBA from a business school", job, 9.0},
		{"bachelors", "Bachelor of Arts", job, 8.0},
		{"btech", "B.Tech in CS", job, 8.0},
		{"generic mention", "attended university", job, 6.0},
		{"nothing", "self taught", job, 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.educationScore(tc.resume, tc.job))
		})
	}
}

func TestContactScoreFrom(t *testing.T) {
	cases := []struct {
		name string
		c    types.ContactInfo
		want float64
	}{
		{"nothing", types.ContactInfo{}, 0},
		{"email only", types.ContactInfo{HasEmail: true}, 3},
		{"everything", types.ContactInfo{Name: "Jane Doe", HasEmail: true, HasPhone: true, HasLocation: true, HasSocial: true}, 10},
		{"no social", types.ContactInfo{Name: "Jane Doe", HasEmail: true, HasPhone: true, HasLocation: true}, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contactScoreFrom(tc.c))
		})
	}
}

func TestQualityScoreFrom(t *testing.T) {
	t.Run("bare text keeps the base score", func(t *testing.T) {
		assert.Equal(t, 5.0, qualityScoreFrom("hello world"))
	})

	t.Run("rich resume is capped at ten", func(t *testing.T) {
		text := "Experience\nDeveloped python and sql services on aws, cut latency by 40% for 300 users. "
		for len(text) < 2000 { // push the word count into the 100-500 band
			text += "Built and maintained internal tooling across teams. "
		}
		score := qualityScoreFrom(text)
		assert.GreaterOrEqual(t, score, 9.0)
		assert.LessOrEqual(t, score, 10.0)
	})

	t.Run("metrics add a point", func(t *testing.T) {
		base := qualityScoreFrom("plain text with nothing else")
		withMetrics := qualityScoreFrom("plain text serving 500 users")
		assert.Equal(t, base+1, withMetrics)
	})
}

func TestWeightedDescriptionBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{9.5, "Excellent Match - Highly Recommended"},
		{9.0, "Excellent Match - Highly Recommended"},
		{7.5, "Very Good Match - Strong Candidate"},
		{6.0, "Good Match - Worth Considering"},
		{4.5, "Fair Match - May Need Training"},
		{3.0, "Poor Match - Not Recommended"},
		{1.0, "Very Poor Match - Avoid"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, weightedDescription(tc.score), "score %.1f", tc.score)
	}
}

func TestWeightedRecommendations(t *testing.T) {
	healthy := map[string]float64{
		CategorySkills:     8,
		CategoryExperience: 8,
		CategoryEducation:  8,
		CategoryContact:    8,
		CategoryQuality:    8,
	}

	t.Run("healthy breakdown gets the positive note", func(t *testing.T) {
		recs := weightedRecommendations(healthy)
		require.Len(t, recs, 1)
		assert.Contains(t, recs[0], "Resume looks good")
	})

	t.Run("each deficit maps to one templated entry", func(t *testing.T) {
		scores := map[string]float64{
			CategorySkills:     2,
			CategoryExperience: 8,
			CategoryEducation:  5.9,
			CategoryContact:    8,
			CategoryQuality:    0,
		}
		recs := weightedRecommendations(scores)
		require.Len(t, recs, 3)
		assert.Contains(t, recs[0], "skills")
		assert.Contains(t, recs[1], "education")
		assert.Contains(t, recs[2], "formatting")
	})
}

func TestSafeCategoryRecovers(t *testing.T) {
	score := safeCategory("boom", func() float64 { panic("nope") })
	assert.Equal(t, weightedNeutral, score)
}
