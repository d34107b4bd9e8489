// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	QuestionBank string `json:"question_bank,omitempty"` // Path to a question bank JSON file
	Requirements string `json:"requirements,omitempty"`  // Path to a custom requirement profile JSON file

	// Assessment behavior
	QuestionsPerSkill int   `json:"questions_per_skill,omitempty"` // Questions sampled per skill
	Seed              int64 `json:"seed,omitempty"`                // Seed for question sampling (0 = time-based)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.QuestionsPerSkill < 0 {
		return fmt.Errorf("config error: 'questions_per_skill' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.QuestionBank != "" {
		if _, err := os.Stat(c.QuestionBank); os.IsNotExist(err) {
			return fmt.Errorf("config error: question bank file not found: %s", c.QuestionBank)
		}
	}
	if c.Requirements != "" {
		if _, err := os.Stat(c.Requirements); os.IsNotExist(err) {
			return fmt.Errorf("config error: requirements file not found: %s", c.Requirements)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.QuestionBank == "" {
		result.QuestionBank = defaults.QuestionBank
	}
	if result.Requirements == "" {
		result.Requirements = defaults.Requirements
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.QuestionsPerSkill == 0 {
		if defaults.QuestionsPerSkill > 0 {
			result.QuestionsPerSkill = defaults.QuestionsPerSkill
		} else {
			result.QuestionsPerSkill = 5 // Default to five questions per skill
		}
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
