package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/ingest"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxBatchConcurrency bounds parallel scoring in a batch request.
const maxBatchConcurrency = 8

// ScoreRequest represents the request body for /score
type ScoreRequest struct {
	Resume string   `json:"resume" validate:"required"`
	Job    string   `json:"job" validate:"required"`
	Engine string   `json:"engine,omitempty" validate:"omitempty,oneof=ats weighted"`
	Skills []string `json:"skills,omitempty"`
}

// ScoreResponse represents the response for /score
type ScoreResponse struct {
	Result *types.Breakdown `json:"result"`
}

// BatchResume is one named resume in a batch request.
type BatchResume struct {
	Name   string `json:"name" validate:"required"`
	Resume string `json:"resume" validate:"required"`
}

// BatchScoreRequest represents the request body for /score/batch: several
// resumes ranked against one job description.
type BatchScoreRequest struct {
	Job     string        `json:"job" validate:"required"`
	Resumes []BatchResume `json:"resumes" validate:"required,min=1,max=50,dive"`
	Engine  string        `json:"engine,omitempty" validate:"omitempty,oneof=ats weighted"`
	Skills  []string      `json:"skills,omitempty"`
}

// BatchEntry is one ranked result in a batch response.
type BatchEntry struct {
	Name   string           `json:"name"`
	Rank   int              `json:"rank"`
	Result *types.Breakdown `json:"result"`
}

// BatchScoreResponse represents the response for /score/batch, ordered by
// descending final score.
type BatchScoreResponse struct {
	Job     string       `json:"job_preview"`
	Ranking []BatchEntry `json:"ranking"`
}

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status   string   `json:"status"`
	Engines  []string `json:"engines"`
	Semantic bool     `json:"semantic"`
}

// handleScore scores one resume against one job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	engine, err := s.engine(req.Engine)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resumeText, jobText, err := prepareDocuments(req.Resume, req.Job)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := engine.ScoreResume(r.Context(), resumeText, jobText, req.Skills)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{Result: result})
}

// handleScoreBatch ranks several resumes against one job description.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	engine, err := s.engine(req.Engine)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobText, err := ingest.PrepareDocument(req.Job)
	if err != nil || jobText == "" {
		s.errorResponse(w, http.StatusBadRequest, (&ErrEmptyDocument{Document: "job"}).Error())
		return
	}

	entries := make([]BatchEntry, len(req.Resumes))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxBatchConcurrency)
	for i, doc := range req.Resumes {
		g.Go(func() error {
			resumeText, err := ingest.PrepareDocument(doc.Resume)
			if err != nil {
				return fmt.Errorf("resume %q: %w", doc.Name, err)
			}
			entries[i] = BatchEntry{
				Name:   doc.Name,
				Result: engine.ScoreResume(ctx, resumeText, jobText, req.Skills),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.FinalScore > entries[j].Result.FinalScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.jsonResponse(w, http.StatusOK, BatchScoreResponse{
		Job:     preview(jobText, 80),
		Ranking: entries,
	})
}

// handleHealth reports service liveness and configured engines.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	engines := make([]string, 0, len(s.engines))
	for name := range s.engines {
		engines = append(engines, name)
	}
	sort.Strings(engines)

	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Engines:  engines,
		Semantic: s.semantic.Available(),
	})
}

// engine resolves the requested engine name, defaulting to the weighted
// scorer.
func (s *Server) engine(name string) (scoring.Engine, error) {
	if name == "" {
		name = types.EngineWeighted
	}
	engine, ok := s.engines[name]
	if !ok {
		return nil, &ErrUnknownEngine{Engine: name}
	}
	return engine, nil
}

func prepareDocuments(resume, job string) (resumeText, jobText string, err error) {
	resumeText, err = ingest.PrepareDocument(resume)
	if err != nil || resumeText == "" {
		return "", "", &ErrEmptyDocument{Document: "resume"}
	}
	jobText, err = ingest.PrepareDocument(job)
	if err != nil || jobText == "" {
		return "", "", &ErrEmptyDocument{Document: "job"}
	}
	return resumeText, jobText, nil
}

// validationMessage extracts a readable message from validator errors.
func validationMessage(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

func preview(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n] + "..."
}
