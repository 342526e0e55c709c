package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/ingest"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/semantic"
	"github.com/jonathan/resume-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against one job description",
	Long: `Scores a resume against a job posting and prints the match breakdown.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScoreCmd,
}

var (
	scoreConfigPath string
	scoreResume     string
	scoreJob        string
	scoreJobURL     string
	scoreEngine     string
	scoreVocabPath  string
	scoreSkills     []string
	scoreAPIKey     string
	scoreEmbedModel string
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume text or HTML file")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVarP(&scoreEngine, "engine", "e", "", "Scoring engine: ats or weighted (default weighted)")
	scoreCmd.Flags().StringVar(&scoreVocabPath, "vocab", "", "Path to skill vocabulary CSV")
	scoreCmd.Flags().StringSliceVar(&scoreSkills, "skills", nil, "Override skill list (comma-separated)")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key for semantic similarity (optional, defaults to GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreEmbedModel, "embed-model", "", "Embedding model name")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the breakdown as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadScoreConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	resumeText, err := ingest.ReadDocument(cfg.Resume)
	if err != nil {
		return err
	}

	var jobText string
	if cfg.JobURL != "" {
		jobText, err = ingest.FetchJobPosting(ctx, cfg.JobURL)
	} else {
		jobText, err = ingest.ReadDocument(cfg.Job)
	}
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	breakdown := engine.ScoreResume(ctx, resumeText, jobText, scoreSkills)
	return printBreakdown(breakdown, scoreJSON)
}

// loadScoreConfig merges an optional config file with explicit CLI flags;
// flags win.
func loadScoreConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if scoreConfigPath != "" {
		loaded, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = scoreResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = scoreJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = scoreJobURL
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = scoreEngine
	}
	if cmd.Flags().Changed("vocab") {
		cfg.VocabPath = scoreVocabPath
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scoreAPIKey
	}
	if cmd.Flags().Changed("embed-model") {
		cfg.EmbedModel = scoreEmbedModel
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildEngine constructs the configured scoring engine. The returned cleanup
// closes the semantic backend when one was opened.
func buildEngine(ctx context.Context, cfg config.Config) (scoring.Engine, func(), error) {
	cleanup := func() {}

	var sem *semantic.Scorer
	if cfg.APIKey != "" {
		embedder, err := semantic.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbedModel)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create embedding backend: %w", err)
		}
		sem = semantic.NewScorer(embedder)
		cleanup = func() { _ = sem.Close() }
	}

	switch cfg.Engine {
	case types.EngineATS:
		engine, err := scoring.NewATSEngine(scoring.ATSOptions{VocabPath: cfg.VocabPath, Semantic: sem})
		return engine, cleanup, err
	case types.EngineWeighted, "":
		engine, err := scoring.NewWeightedEngine(scoring.WeightedOptions{VocabPath: cfg.VocabPath, Weights: cfg.Weights})
		return engine, cleanup, err
	default:
		return nil, cleanup, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}

func printBreakdown(b *types.Breakdown, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBreakdown(b)
	printer.PrintContact(b.Contact)
	printer.PrintRecommendations(b.Recommendations)
	return nil
}
