// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Draft   string `json:"draft,omitempty" validate:"omitempty,file"`   // Path to the draft text file
	Job     string `json:"job,omitempty" validate:"omitempty,file"`     // Path to job posting HTML/text file
	JobURL  string `json:"job_url,omitempty" validate:"omitempty,url"`  // URL to fetch the job posting from
	History string `json:"history,omitempty" validate:"omitempty,file"` // Path to a work-history JSON file
	Kind    string `json:"kind,omitempty" validate:"omitempty,oneof=resume cover_letter"`

	// Candidate
	UserID string `json:"user_id,omitempty"` // User ID for work-history lookups

	// Evaluation
	Tone             string  `json:"tone,omitempty" validate:"omitempty,oneof=professional conversational enthusiastic formal direct"`
	MaxIterations    int     `json:"max_iterations,omitempty" validate:"gte=0,lte=10"`
	QualityThreshold float64 `json:"quality_threshold,omitempty" validate:"gte=0,lte=100"`
	Strict           bool    `json:"strict,omitempty"`
	MinWords         int     `json:"min_words,omitempty" validate:"gte=0"`
	MaxWords         int     `json:"max_words,omitempty" validate:"gte=0"`
	MaxLines         int     `json:"max_lines,omitempty" validate:"gte=0"`

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values. Required fields
// are not checked here; they are enforced by CLI flag validation after
// merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.MinWords > 0 && c.MaxWords > 0 && c.MinWords > c.MaxWords {
		return fmt.Errorf("config error: 'min_words' must not exceed 'max_words'")
	}

	if err := validate.Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			first := invalid[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Draft == "" {
		result.Draft = defaults.Draft
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.History == "" {
		result.History = defaults.History
	}
	if result.Kind == "" {
		result.Kind = defaults.Kind
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.Tone == "" {
		result.Tone = defaults.Tone
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MaxIterations == 0 {
		result.MaxIterations = defaults.MaxIterations
	}
	if result.QualityThreshold == 0 {
		result.QualityThreshold = defaults.QualityThreshold
	}
	if result.MinWords == 0 {
		result.MinWords = defaults.MinWords
	}
	if result.MaxWords == 0 {
		result.MaxWords = defaults.MaxWords
	}
	if result.MaxLines == 0 {
		result.MaxLines = defaults.MaxLines
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
