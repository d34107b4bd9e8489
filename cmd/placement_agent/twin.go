package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velionx/placement-engine/internal/llm"
	"github.com/velionx/placement-engine/internal/logger"
	"github.com/velionx/placement-engine/internal/observability"
	"github.com/velionx/placement-engine/internal/store"
	"github.com/velionx/placement-engine/internal/twin"
	"github.com/velionx/placement-engine/internal/types"
)

var twinCmd = &cobra.Command{
	Use:   "twin",
	Short: "Maintain and inspect a student's digital twin",
	Long:  "Feed learning events into a student's behavioral profile and print its summary. With --predict, also forecast weaknesses for a target company.",
	RunE:  runTwin,
}

var (
	twinStudentID      string
	twinEventsFile     string
	twinPredictCompany string
	twinDatabaseURL    string
	twinAPIKey         string
	twinConfigPath     string
	twinOutputFile     string
	twinVerbose        bool
)

func init() {
	twinCmd.Flags().StringVar(&twinStudentID, "student", "", "Student identifier (required)")
	twinCmd.Flags().StringVar(&twinEventsFile, "events", "", "Path to a JSON file of learning events to record")
	twinCmd.Flags().StringVar(&twinPredictCompany, "predict", "", "Target company to forecast weaknesses for")
	twinCmd.Flags().StringVar(&twinDatabaseURL, "db-url", "", "PostgreSQL URL for a persistent twin (overrides DATABASE_URL env var)")
	twinCmd.Flags().StringVar(&twinAPIKey, "api-key", "", "Gemini API key for success prediction (overrides GEMINI_API_KEY env var)")
	twinCmd.Flags().StringVar(&twinConfigPath, "config", "", "Path to a JSON config file")
	twinCmd.Flags().StringVarP(&twinOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	twinCmd.Flags().BoolVarP(&twinVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(twinCmd)
}

// eventEnvelope is one entry in an events file.
type eventEnvelope struct {
	EventType types.EventType `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

func runTwin(cmd *cobra.Command, _ []string) error {
	if twinStudentID == "" {
		return fmt.Errorf("--student is required")
	}

	cfg, err := loadCLIConfig(twinConfigPath)
	if err != nil {
		return err
	}
	databaseURL := twinDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	apiKey := twinAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Without a database the twin lives only for this invocation, so an
	// events file is the only way to give it state.
	var twinStore store.TwinStore = store.NewMemory()
	if databaseURL != "" {
		postgres, err := store.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer postgres.Close()
		if err := postgres.Migrate(ctx); err != nil {
			return err
		}
		twinStore = postgres
	} else if twinEventsFile == "" {
		return fmt.Errorf("--events is required without --db-url")
	}

	log, err := logger.New(false, twinVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	augmenter := llm.NewAugmenter(nil)
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		augmenter = llm.NewAugmenter(client)
	}

	aggregator := twin.NewAggregator(twinStore, augmenter, log)

	if twinEventsFile != "" {
		if err := replayEvents(ctx, aggregator, twinStudentID, twinEventsFile); err != nil {
			return err
		}
	}

	summary, err := aggregator.Summary(ctx, twinStudentID)
	if err != nil {
		return fmt.Errorf("failed to summarize twin: %w", err)
	}
	observability.NewPrinter(os.Stdout).PrintTwinSummary(summary)

	if twinPredictCompany == "" {
		return writeJSON(twinOutputFile, summary)
	}

	forecast, err := aggregator.PredictWeakness(ctx, twinStudentID, twinPredictCompany)
	if err != nil {
		return fmt.Errorf("failed to predict weaknesses: %w", err)
	}
	observability.NewPrinter(os.Stdout).PrintWeaknessForecast(forecast)
	return writeJSON(twinOutputFile, forecast)
}

// replayEvents records every event in the file, in order.
func replayEvents(ctx context.Context, aggregator *twin.Aggregator, studentID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read events file: %w", err)
	}

	var envelopes []eventEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return fmt.Errorf("failed to parse events JSON: %w", err)
	}

	for i, envelope := range envelopes {
		event, err := decodeEvent(envelope)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if _, err := aggregator.RecordEvent(ctx, studentID, event); err != nil {
			return fmt.Errorf("event %d: failed to record: %w", i, err)
		}
	}
	return nil
}

// decodeEvent maps an envelope to its typed event.
func decodeEvent(envelope eventEnvelope) (types.Event, error) {
	unmarshal := func(v types.Event) (types.Event, error) {
		if len(envelope.Data) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(envelope.Data, v); err != nil {
			return nil, fmt.Errorf("failed to parse %s data: %w", envelope.EventType, err)
		}
		return v, nil
	}

	switch envelope.EventType {
	case types.EventAssessmentCompleted:
		return unmarshal(&types.AssessmentCompleted{})
	case types.EventInterviewCompleted:
		return unmarshal(&types.InterviewCompleted{})
	case types.EventCodingSubmission:
		return unmarshal(&types.CodingSubmission{})
	case types.EventResourceCompleted:
		return unmarshal(&types.ResourceCompleted{})
	case types.EventRoadmapProgress:
		return unmarshal(&types.RoadmapProgress{})
	case types.EventGitHubActivity:
		return unmarshal(&types.GitHubActivityEvent{})
	default:
		return nil, fmt.Errorf("unknown event type %q", envelope.EventType)
	}
}
