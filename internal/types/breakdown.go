// Package types defines the shared result types produced by the scoring engines.
package types

// Engine names accepted by the scoring API.
const (
	EngineATS      = "ats"
	EngineWeighted = "weighted"
)

// ContactInfo holds the independent contact-presence signals detected in a resume.
type ContactInfo struct {
	HasEmail    bool   `json:"has_email"`
	HasPhone    bool   `json:"has_phone"`
	HasSocial   bool   `json:"has_social"`
	HasLocation bool   `json:"has_location"`
	Name        string `json:"name,omitempty"`
}

// Breakdown is the full structured result of one scoring call. It is built
// fresh per call and never mutated after construction.
type Breakdown struct {
	// FinalScore is 0-100 for the ATS engine and 0-10 for the weighted engine.
	FinalScore  float64 `json:"final_score"`
	Description string  `json:"score_description"`
	Engine      string  `json:"engine"`

	// Scores maps each sub-signal name to its bounded numeric value.
	Scores map[string]float64 `json:"breakdown"`
	// Weights is the weight table used by the weighted engine (nil for ATS,
	// whose sub-scores carry their weights in their bounds).
	Weights map[string]float64 `json:"weights,omitempty"`

	MatchedSkills   []string `json:"matched_skills,omitempty"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`

	ResumeYears  int    `json:"resume_years"`
	JobYears     int    `json:"job_years"`
	ResumeDegree string `json:"resume_degree,omitempty"`
	JobDegree    string `json:"job_degree,omitempty"`

	Contact ContactInfo `json:"contact"`

	// SemanticSimilarity is the raw [0,1] similarity before scaling.
	SemanticSimilarity float64 `json:"semantic_similarity"`

	Recommendations []string `json:"recommendations"`

	// Degraded is set when any sub-signal came from a fallback path instead
	// of its primary computation.
	Degraded bool `json:"degraded,omitempty"`

	// Err is non-empty only when the whole scoring call failed; FinalScore
	// is 0 in that case.
	Err string `json:"error,omitempty"`
}

// SkillsMatched returns the number of vocabulary skills found in both texts.
func (b *Breakdown) SkillsMatched() int { return len(b.MatchedSkills) }

// SkillsMissing returns the number of job skills absent from the resume.
func (b *Breakdown) SkillsMissing() int { return len(b.MissingSkills) }

// Failed reports whether the scoring call hit the total-failure path.
func (b *Breakdown) Failed() bool { return b.Err != "" }
