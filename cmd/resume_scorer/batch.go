package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/ingest"
	"github.com/jonathan/resume-scorer/internal/types"
)

// batchConcurrency bounds parallel scoring across resume files.
const batchConcurrency = 8

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank a directory of resumes against one job description",
	Long:  `Scores every resume file in a directory against the same job posting and prints them ranked by final score.`,
	RunE:  runBatchCmd,
}

var (
	batchDir        string
	batchJob        string
	batchJobURL     string
	batchEngine     string
	batchVocabPath  string
	batchAPIKey     string
	batchEmbedModel string
	batchTop        int
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "resumes", "d", "", "Directory of resume files (.txt, .md, .html)")
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	batchCmd.Flags().StringVar(&batchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	batchCmd.Flags().StringVarP(&batchEngine, "engine", "e", "", "Scoring engine: ats or weighted (default weighted)")
	batchCmd.Flags().StringVar(&batchVocabPath, "vocab", "", "Path to skill vocabulary CSV")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key for semantic similarity (optional, defaults to GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchEmbedModel, "embed-model", "", "Embedding model name")
	batchCmd.Flags().IntVar(&batchTop, "top", 0, "Only print the top N candidates (0 prints all)")

	_ = batchCmd.MarkFlagRequired("resumes")
	rootCmd.AddCommand(batchCmd)
}

type rankedResume struct {
	Name      string
	Breakdown *types.Breakdown
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if batchJob == "" && batchJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	apiKey := batchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cfg := config.Config{
		Engine:     batchEngine,
		VocabPath:  batchVocabPath,
		APIKey:     apiKey,
		EmbedModel: batchEmbedModel,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var jobText string
	var err error
	if batchJobURL != "" {
		jobText, err = ingest.FetchJobPosting(ctx, batchJobURL)
	} else {
		jobText, err = ingest.ReadDocument(batchJob)
	}
	if err != nil {
		return err
	}

	files, err := resumeFiles(batchDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resume files found in %s", batchDir)
	}

	engine, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ranked := make([]rankedResume, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, path := range files {
		g.Go(func() error {
			text, err := ingest.ReadDocument(path)
			if err != nil {
				return err
			}
			ranked[i] = rankedResume{
				Name:      filepath.Base(path),
				Breakdown: engine.ScoreResume(gctx, text, jobText, nil),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Breakdown.FinalScore > ranked[j].Breakdown.FinalScore
	})
	if batchTop > 0 && batchTop < len(ranked) {
		ranked = ranked[:batchTop]
	}

	printRanking(ranked)
	return nil
}

// resumeFiles lists the scorable documents in dir, sorted by name.
func resumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md", ".html", ".htm":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func printRanking(ranked []rankedResume) {
	for i, r := range ranked {
		fmt.Printf("#%-3d %-40s %6.1f  %s\n", i+1, r.Name, r.Breakdown.FinalScore, r.Breakdown.Description)
		if r.Breakdown.SkillsMatched() > 0 {
			fmt.Printf("     matched: %s\n", strings.Join(r.Breakdown.MatchedSkills, ", "))
		}
	}
}
