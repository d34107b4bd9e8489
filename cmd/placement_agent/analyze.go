package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velionx/placement-engine/internal/config"
	"github.com/velionx/placement-engine/internal/gap"
	"github.com/velionx/placement-engine/internal/logger"
	"github.com/velionx/placement-engine/internal/observability"
	"github.com/velionx/placement-engine/internal/store"
	"github.com/velionx/placement-engine/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a student's skill gaps against employer requirements",
	Long:  "Match the student's skills against one employer requirement profile, a custom profile file, or the whole catalog, and report missing skills with severities and preparation estimates.",
	RunE:  runAnalyze,
}

var (
	analyzeSkills       string
	analyzeStudentID    string
	analyzeCompanyID    string
	analyzeRequirements string
	analyzeOutputFile   string
	analyzeDatabaseURL  string
	analyzeConfigPath   string
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Comma-separated student skills (required)")
	analyzeCmd.Flags().StringVar(&analyzeStudentID, "student", "anonymous", "Student identifier")
	analyzeCmd.Flags().StringVarP(&analyzeCompanyID, "company", "c", "", "Catalog id of the target employer (empty analyzes the whole catalog)")
	analyzeCmd.Flags().StringVar(&analyzeRequirements, "requirements", "", "Path to a custom requirement profile JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL URL to persist results (overrides DATABASE_URL env var)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted analysis summaries")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeSkills == "" {
		return fmt.Errorf("--skills is required")
	}
	if analyzeCompanyID != "" && analyzeRequirements != "" {
		return fmt.Errorf("cannot use --company with --requirements")
	}

	cfg, err := loadCLIConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	databaseURL := analyzeDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	log, err := logger.New(false, analyzeVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analyzer := gap.NewAnalyzer(nil, nil, log)
	skills := splitSkills(analyzeSkills)

	var results []*types.GapAnalysisResult
	switch {
	case analyzeRequirements != "":
		profile, err := loadRequirementProfile(analyzeRequirements)
		if err != nil {
			return err
		}
		results = append(results, analyzer.Analyze(analyzeStudentID, skills, *profile))
	case analyzeCompanyID != "":
		result, err := analyzer.AnalyzeCompany(analyzeStudentID, skills, analyzeCompanyID)
		if err != nil {
			return fmt.Errorf("failed to analyze company %s: %w", analyzeCompanyID, err)
		}
		results = append(results, result)
	default:
		results, err = analyzer.BatchAnalyze(ctx, analyzeStudentID, skills, nil)
		if err != nil {
			return fmt.Errorf("failed to run batch analysis: %w", err)
		}
	}

	if databaseURL != "" {
		if err := persistAnalyses(ctx, databaseURL, results); err != nil {
			return err
		}
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, result := range results {
			printer.PrintGapAnalysis(result)
		}
	}

	return writeJSON(analyzeOutputFile, results)
}

// persistAnalyses saves every result to the database.
func persistAnalyses(ctx context.Context, databaseURL string, results []*types.GapAnalysisResult) error {
	postgres, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer postgres.Close()

	if err := postgres.Migrate(ctx); err != nil {
		return err
	}
	for _, result := range results {
		if err := postgres.SaveAnalysis(ctx, result); err != nil {
			return err
		}
	}
	return nil
}

// loadRequirementProfile reads and validates a custom requirement profile.
func loadRequirementProfile(path string) (*types.RequirementProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}
	var profile types.RequirementProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid requirement profile: %w", err)
	}
	return &profile, nil
}

// loadCLIConfig loads an optional config file; an empty path yields defaults.
func loadCLIConfig(path string) (config.Config, error) {
	if path == "" {
		empty := config.Config{}
		return empty.MergeWithDefaults(config.Config{}), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(config.Config{}), nil
}

// splitSkills parses a comma-separated skill list, dropping empties.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// writeJSON marshals v with indentation to the given file, or stdout when
// the path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
