// Package assessment implements the question bank and the adaptive
// assessment session controller.
package assessment

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/velionx/placement-engine/internal/ontology"
	"github.com/velionx/placement-engine/internal/schemas"
	"github.com/velionx/placement-engine/internal/types"
)

// questionBankSchema validates externally supplied question banks.
const questionBankSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "question", "options", "correct", "skill", "category", "difficulty"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"question": {"type": "string", "minLength": 1},
					"options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
					"correct": {"type": "string", "minLength": 1},
					"explanation": {"type": "string"},
					"skill": {"type": "string", "minLength": 1},
					"category": {"type": "string", "minLength": 1},
					"difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]}
				}
			}
		}
	}
}`

// bankFile is the on-disk shape of an external question bank.
type bankFile struct {
	Questions []types.Question `json:"questions"`
}

// Bank is a static question pool indexed by category, skill, and difficulty.
// A Bank is read-only after construction.
type Bank struct {
	byCategory map[string]map[string]map[types.Difficulty][]types.Question
}

// NewBank indexes a flat question list. Category and skill are normalized
// the same way skill tokens are.
func NewBank(questions []types.Question) *Bank {
	bank := &Bank{byCategory: make(map[string]map[string]map[types.Difficulty][]types.Question)}
	for _, q := range questions {
		category := ontology.Normalize(q.Category)
		skill := ontology.Normalize(q.Skill)
		if category == "" || skill == "" {
			continue
		}
		if bank.byCategory[category] == nil {
			bank.byCategory[category] = make(map[string]map[types.Difficulty][]types.Question)
		}
		if bank.byCategory[category][skill] == nil {
			bank.byCategory[category][skill] = make(map[types.Difficulty][]types.Question)
		}
		bank.byCategory[category][skill][q.Difficulty] = append(bank.byCategory[category][skill][q.Difficulty], q)
	}
	return bank
}

// LoadBank reads a question bank from a JSON file, validating it against
// the bank schema first.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}
	if err := schemas.ValidateJSONString(questionBankSchema, string(data)); err != nil {
		return nil, fmt.Errorf("question bank %s failed schema validation: %w", path, err)
	}
	var file bankFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse question bank %s: %w", path, err)
	}
	return NewBank(file.Questions), nil
}

// Questions samples up to count questions for a category/skill/difficulty
// without replacement. The rng drives selection order; nil uses a
// time-seeded source.
func (b *Bank) Questions(category, skill string, difficulty types.Difficulty, count int, rng *rand.Rand) []types.Question {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	available := b.pool(category, skill, difficulty)
	if len(available) == 0 || count <= 0 {
		return nil
	}

	n := min(count, len(available))
	sampled := make([]types.Question, 0, n)
	for _, idx := range rng.Perm(len(available))[:n] {
		sampled = append(sampled, available[idx])
	}
	return sampled
}

// pool returns the raw question slice for a category/skill/difficulty.
func (b *Bank) pool(category, skill string, difficulty types.Difficulty) []types.Question {
	skills, ok := b.byCategory[ontology.Normalize(category)]
	if !ok {
		return nil
	}
	difficulties, ok := skills[ontology.Normalize(skill)]
	if !ok {
		return nil
	}
	return difficulties[difficulty]
}
