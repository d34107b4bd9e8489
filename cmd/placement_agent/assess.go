package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/velionx/placement-engine/internal/assessment"
	"github.com/velionx/placement-engine/internal/llm"
	"github.com/velionx/placement-engine/internal/logger"
	"github.com/velionx/placement-engine/internal/observability"
	"github.com/velionx/placement-engine/internal/store"
	"github.com/velionx/placement-engine/internal/twin"
	"github.com/velionx/placement-engine/internal/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run an interactive adaptive assessment",
	Long:  "Run an adaptive multiple-choice assessment on the given skills. Difficulty escalates after two consecutive correct answers and de-escalates after two consecutive wrong ones.",
	RunE:  runAssess,
}

var (
	assessSkills      string
	assessCategory    string
	assessStudentID   string
	assessCount       int
	assessSeed        int64
	assessBankPath    string
	assessAPIKey      string
	assessDatabaseURL string
	assessConfigPath  string
	assessOutputFile  string
)

func init() {
	assessCmd.Flags().StringVarP(&assessSkills, "skills", "s", "", "Comma-separated skills to assess (required)")
	assessCmd.Flags().StringVar(&assessCategory, "category", "technical", "Assessment category (technical, aptitude, communication)")
	assessCmd.Flags().StringVar(&assessStudentID, "student", "anonymous", "Student identifier")
	assessCmd.Flags().IntVar(&assessCount, "count", 0, "Questions sampled per skill (default from config, else 5)")
	assessCmd.Flags().Int64Var(&assessSeed, "seed", 0, "Seed for question sampling (0 = time-based)")
	assessCmd.Flags().StringVar(&assessBankPath, "bank", "", "Path to a question bank JSON file (default: built-in bank)")
	assessCmd.Flags().StringVar(&assessAPIKey, "api-key", "", "Gemini API key for feedback generation (overrides GEMINI_API_KEY env var)")
	assessCmd.Flags().StringVar(&assessDatabaseURL, "db-url", "", "PostgreSQL URL to persist the result and twin event")
	assessCmd.Flags().StringVar(&assessConfigPath, "config", "", "Path to a JSON config file")
	assessCmd.Flags().StringVarP(&assessOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	if assessSkills == "" {
		return fmt.Errorf("--skills is required")
	}

	cfg, err := loadCLIConfig(assessConfigPath)
	if err != nil {
		return err
	}

	count := assessCount
	if count == 0 {
		count = cfg.QuestionsPerSkill
	}
	seed := assessSeed
	if seed == 0 {
		seed = cfg.Seed
	}
	bankPath := assessBankPath
	if bankPath == "" {
		bankPath = cfg.QuestionBank
	}
	apiKey := assessAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	databaseURL := assessDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bank := assessment.DefaultBank()
	if bankPath != "" {
		bank, err = assessment.LoadBank(bankPath)
		if err != nil {
			return fmt.Errorf("failed to load question bank: %w", err)
		}
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	session := assessment.NewSession(assessStudentID, assessCategory, splitSkills(assessSkills), count, bank, rng)
	if len(session.Questions) == 0 {
		return fmt.Errorf("no questions available for category %q and the given skills", assessCategory)
	}

	result, err := runAssessmentLoop(session)
	if err != nil {
		return err
	}

	// Feedback degrades to a deterministic default without an API key.
	augmenter := llm.NewAugmenter(nil)
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		augmenter = llm.NewAugmenter(client)
	}
	result.Feedback, result.FeedbackFallback = augmenter.GenerateAssessmentFeedback(ctx, result.Category, result.Score, lastAnswers(session, 5))

	if databaseURL != "" {
		if err := persistAssessment(ctx, databaseURL, session, result); err != nil {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintAssessmentResult(result)
	return writeJSON(assessOutputFile, result)
}

// runAssessmentLoop walks the session's questions on stdin and completes
// the session. Entering "q" ends the assessment early.
func runAssessmentLoop(session *types.AssessmentSession) (*types.AssessmentResult, error) {
	scanner := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	_, _ = fmt.Fprintf(out, "Assessment %s: %d questions. Answer with the option number, or q to finish early.\n\n", session.ID, len(session.Questions))

	for i := range session.Questions {
		question := session.Questions[i]
		_, _ = fmt.Fprintf(out, "Q%d [%s/%s] %s\n", i+1, question.Skill, question.Difficulty, question.Text)
		for j, option := range question.Options {
			_, _ = fmt.Fprintf(out, "  %d) %s\n", j+1, option)
		}

		started := time.Now()
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") {
			break
		}

		answer := input
		if index, err := strconv.Atoi(input); err == nil && index >= 1 && index <= len(question.Options) {
			answer = question.Options[index-1]
		}

		submit, err := assessment.SubmitAnswer(session, question.ID, answer, int(time.Since(started).Seconds()))
		if err != nil {
			return nil, fmt.Errorf("failed to submit answer: %w", err)
		}

		if submit.IsCorrect {
			_, _ = fmt.Fprintln(out, "Correct.")
		} else {
			_, _ = fmt.Fprintf(out, "Wrong. Correct answer: %s\n", submit.CorrectAnswer)
		}
		if submit.Explanation != "" {
			_, _ = fmt.Fprintf(out, "  %s\n", submit.Explanation)
		}
		_, _ = fmt.Fprintf(out, "  Difficulty is now %s, %d questions remaining.\n\n", submit.NewDifficulty, submit.QuestionsRemaining)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	result, err := assessment.Complete(session)
	if err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	return result, nil
}

// persistAssessment saves the session and result and folds the outcome into
// the student's digital twin.
func persistAssessment(ctx context.Context, databaseURL string, session *types.AssessmentSession, result *types.AssessmentResult) error {
	postgres, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer postgres.Close()

	if err := postgres.Migrate(ctx); err != nil {
		return err
	}
	if err := postgres.SaveSession(ctx, session); err != nil {
		return err
	}
	if err := postgres.SaveResult(ctx, result); err != nil {
		return err
	}

	log, err := logger.New(false, false)
	if err != nil {
		return err
	}
	aggregator := twin.NewAggregator(postgres, nil, log)
	_, err = aggregator.RecordEvent(ctx, result.StudentID, types.AssessmentCompleted{
		Category:    result.Category,
		Score:       result.Score,
		SkillScores: result.SkillScores,
		Strengths:   result.Strengths,
		Weaknesses:  result.Weaknesses,
	})
	if err != nil {
		return fmt.Errorf("failed to record twin event: %w", err)
	}
	return nil
}

// lastAnswers returns up to n answers from the tail of the session log.
func lastAnswers(session *types.AssessmentSession, n int) []types.AnswerRecord {
	answers := session.Answers
	if len(answers) > n {
		answers = answers[len(answers)-n:]
	}
	return answers
}
