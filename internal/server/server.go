package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/semantic"
	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	engines     map[string]scoring.Engine
	validator   *validator.Validate
	rateLimiter *ratelimit.Limiter
	semantic    *semantic.Scorer
}

// Config holds server configuration
type Config struct {
	Port      int
	VocabPath string
	APIKey    string
	// EmbedModel selects the embedding model when APIKey is set.
	EmbedModel string
	// Weights overrides the weighted engine's category weights.
	Weights map[string]float64
	// RateLimit overrides the default per-client limit; nil uses defaults.
	RateLimit *ratelimit.Config
}

// New creates a new server instance with both scoring engines.
func New(cfg Config) (*Server, error) {
	var sem *semantic.Scorer
	if cfg.APIKey != "" {
		embedder, err := semantic.NewGeminiEmbedder(context.Background(), cfg.APIKey, cfg.EmbedModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedding backend: %w", err)
		}
		sem = semantic.NewScorer(embedder)
	}

	ats, err := scoring.NewATSEngine(scoring.ATSOptions{VocabPath: cfg.VocabPath, Semantic: sem})
	if err != nil {
		return nil, fmt.Errorf("failed to create ats engine: %w", err)
	}
	weighted, err := scoring.NewWeightedEngine(scoring.WeightedOptions{VocabPath: cfg.VocabPath, Weights: cfg.Weights})
	if err != nil {
		return nil, fmt.Errorf("failed to create weighted engine: %w", err)
	}

	s := &Server{
		engines: map[string]scoring.Engine{
			types.EngineATS:      ats,
			types.EngineWeighted: weighted,
		},
		validator:   validator.New(),
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		semantic:    sem,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /score/batch", s.handleScoreBatch)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.semantic != nil {
		_ = s.semantic.Close()
	}
	slog.Info("server stopped")
	return nil
}

// Handler exposes the routed handler chain, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their request budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientAddr(r)
		allowed, info := s.rateLimiter.Allow(clientID)

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))

		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging tags each request with an ID and logs its outcome.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
		slog.Info("request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote", clientAddr(r),
			"duration", time.Since(start))
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
