package gap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/velionx/placement-engine/internal/ontology"
	"github.com/velionx/placement-engine/internal/types"
)

// Fixed category membership for learning-time estimation. Skills outside
// every list fall back to the generic concept table.
var (
	programmingLanguages = []string{"python", "java", "javascript", "c++", "c", "go", "rust"}
	frameworks           = []string{"react", "angular", "vue", "django", "spring", "node.js"}
	softSkills           = []string{"communication", "leadership", "teamwork", "presentation"}
)

// learningTimes maps skill category x severity to a week-range estimate.
var learningTimes = map[string]map[types.Severity]string{
	"programming_language": {
		types.SeverityCritical: "8-12 weeks",
		types.SeverityModerate: "4-6 weeks",
		types.SeverityMinor:    "2-3 weeks",
	},
	"framework": {
		types.SeverityCritical: "4-6 weeks",
		types.SeverityModerate: "2-3 weeks",
		types.SeverityMinor:    "1-2 weeks",
	},
	"concept": {
		types.SeverityCritical: "6-8 weeks",
		types.SeverityModerate: "3-4 weeks",
		types.SeverityMinor:    "1-2 weeks",
	},
	"soft_skill": {
		types.SeverityCritical: "8-12 weeks",
		types.SeverityModerate: "4-6 weeks",
		types.SeverityMinor:    "2-4 weeks",
	},
}

// ClassifySeverity classifies a missing skill by how many of its related
// skills the student already holds: >=2 means minor, exactly 1 means
// moderate, none means critical. Pure function of the ontology and the
// current skill set.
func ClassifySeverity(o *ontology.Ontology, missingSkill string, studentSkills []string) types.Severity {
	student := make(map[string]struct{}, len(studentSkills))
	for _, s := range studentSkills {
		student[ontology.Normalize(s)] = struct{}{}
	}

	coverage := 0
	for _, related := range o.Related(missingSkill) {
		if _, ok := student[related]; ok {
			coverage++
		}
	}

	switch {
	case coverage >= 2:
		return types.SeverityMinor
	case coverage == 1:
		return types.SeverityModerate
	default:
		return types.SeverityCritical
	}
}

// Prioritize orders missing skills critical-first. The sort is stable, so
// the original relative order is preserved among equal severities.
func Prioritize(missingSkills []string, severities map[string]types.Severity) []string {
	ordered := make([]string, len(missingSkills))
	copy(ordered, missingSkills)
	sort.SliceStable(ordered, func(i, j int) bool {
		return severities[ordered[i]].Rank() < severities[ordered[j]].Rank()
	})
	return ordered
}

// EstimateLearningTime returns a human-readable week-range estimate for
// acquiring a skill at the given gap severity.
func EstimateLearningTime(skill string, severity types.Severity) string {
	category := "concept"
	normalized := ontology.Normalize(skill)
	switch {
	case contains(programmingLanguages, normalized):
		category = "programming_language"
	case contains(frameworks, normalized):
		category = "framework"
	case contains(softSkills, normalized):
		category = "soft_skill"
	}
	return learningTimes[category][severity]
}

// TotalPreparationWeeks sums the upper bound of each missing skill's
// week-range estimate. The upper-bound-only policy is intentional.
func TotalPreparationWeeks(missingSkills []string, severities map[string]types.Severity) int {
	total := 0
	for _, skill := range missingSkills {
		estimate := EstimateLearningTime(skill, severities[skill])
		total += upperBoundWeeks(estimate)
	}
	return total
}

// upperBoundWeeks parses the upper bound from a "4-6 weeks" style range.
func upperBoundWeeks(estimate string) int {
	parts := strings.SplitN(estimate, "-", 2)
	if len(parts) != 2 {
		return 0
	}
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return 0
	}
	weeks, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return weeks
}

// formatPreparationTime renders the aggregate estimate.
func formatPreparationTime(totalWeeks int) string {
	if totalWeeks <= 0 {
		return "Ready!"
	}
	return fmt.Sprintf("%d weeks", totalWeeks)
}

func contains(list []string, skill string) bool {
	for _, s := range list {
		if s == skill {
			return true
		}
	}
	return false
}
