// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`     // Path to resume text file
	Job       string `json:"job,omitempty"`        // Path to job posting text file
	JobURL    string `json:"job_url,omitempty"`    // URL to fetch job posting from
	VocabPath string `json:"vocab_path,omitempty"` // Path to skill vocabulary CSV

	// Scoring
	Engine  string             `json:"engine,omitempty"`  // Scoring engine: "ats" or "weighted"
	Weights map[string]float64 `json:"weights,omitempty"` // Weighted engine category weights

	// Semantic backend
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	EmbedModel string `json:"embed_model,omitempty"` // Embedding model name

	// Server
	Port int `json:"port,omitempty"` // HTTP server listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Engine != "" && c.Engine != types.EngineATS && c.Engine != types.EngineWeighted {
		return fmt.Errorf("config error: 'engine' must be %q or %q", types.EngineATS, types.EngineWeighted)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in range 0-65535")
	}

	if len(c.Weights) > 0 {
		var sum float64
		for name, w := range c.Weights {
			if w < 0 {
				return fmt.Errorf("config error: weight %q must be non-negative", name)
			}
			sum += w
		}
		if math.Abs(sum-1.0) > 0.001 {
			return fmt.Errorf("config error: weights must sum to 1.0, got %.3f", sum)
		}
	}

	// Validate file paths exist (if specified)
	for _, p := range []struct {
		name, path string
	}{
		{"resume", c.Resume},
		{"job", c.Job},
		{"vocab_path", c.VocabPath},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.VocabPath == "" {
		result.VocabPath = defaults.VocabPath
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbedModel == "" {
		result.EmbedModel = defaults.EmbedModel
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if len(result.Weights) == 0 {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
