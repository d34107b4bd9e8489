package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velionx/placement-engine/internal/llm"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Generate mock interview questions",
	Long:  "Synthesize interview questions for the given skills and difficulty. Without an API key the command emits the deterministic fallback question so pipelines keep working offline.",
	RunE:  runInterview,
}

var (
	interviewType       string
	interviewSkills     string
	interviewDifficulty string
	interviewRole       string
	interviewCount      int
	interviewAPIKey     string
	interviewConfigPath string
	interviewOutputFile string
)

func init() {
	interviewCmd.Flags().StringVar(&interviewType, "type", "technical", "Interview type (technical, behavioral, hr)")
	interviewCmd.Flags().StringVarP(&interviewSkills, "skills", "s", "", "Comma-separated skills to focus on (required)")
	interviewCmd.Flags().StringVar(&interviewDifficulty, "difficulty", "medium", "Question difficulty (easy, medium, hard)")
	interviewCmd.Flags().StringVar(&interviewRole, "role", "", "Target role the questions should aim at")
	interviewCmd.Flags().IntVar(&interviewCount, "count", 3, "Number of questions to generate")
	interviewCmd.Flags().StringVar(&interviewAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	interviewCmd.Flags().StringVar(&interviewConfigPath, "config", "", "Path to a JSON config file")
	interviewCmd.Flags().StringVarP(&interviewOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(interviewCmd)
}

// generatedQuestion pairs a question with whether it came from the model
// or the deterministic fallback.
type generatedQuestion struct {
	llm.InterviewQuestion
	Fallback bool `json:"fallback"`
}

func runInterview(cmd *cobra.Command, _ []string) error {
	if interviewSkills == "" {
		return fmt.Errorf("--skills is required")
	}
	if interviewCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	cfg, err := loadCLIConfig(interviewConfigPath)
	if err != nil {
		return err
	}
	apiKey := interviewAPIKey
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

	augmenter := llm.NewAugmenter(nil)
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		augmenter = llm.NewAugmenter(client)
	}

	questions := make([]generatedQuestion, 0, interviewCount)
	previous := make([]string, 0, interviewCount)
	for i := 0; i < interviewCount; i++ {
		question, usedFallback := augmenter.GenerateInterviewQuestion(ctx, llm.InterviewQuestionRequest{
			InterviewType:     interviewType,
			SkillFocus:        splitSkills(interviewSkills),
			Difficulty:        interviewDifficulty,
			PreviousQuestions: previous,
			TargetRole:        interviewRole,
		})
		questions = append(questions, generatedQuestion{InterviewQuestion: *question, Fallback: usedFallback})
		previous = append(previous, question.Question)

		// Every fallback repeats the same question, so one is enough.
		if usedFallback {
			break
		}
	}

	return writeJSON(interviewOutputFile, questions)
}
