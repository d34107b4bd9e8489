// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/velionx/placement-engine/internal/gap"
	"github.com/velionx/placement-engine/internal/twin"
	"github.com/velionx/placement-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGapAnalysis outputs a human-readable summary of a gap analysis.
func (p *Printer) PrintGapAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", result.CompanyName))
	sb.WriteString(fmt.Sprintf("Match:    %.2f%%\n", result.SkillMatchPercentage))
	sb.WriteString(fmt.Sprintf("Prep:     %s\n", result.EstimatedPreparationTime))
	sb.WriteString("\n")

	if len(result.MissingSkills) > 0 {
		sb.WriteString("Missing Skills:\n")
		count := min(len(result.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := result.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill))
			if severity, ok := result.GapSeverity[skill]; ok {
				sb.WriteString(fmt.Sprintf(" (%s)", severity))
			}
			sb.WriteString("\n")
		}
		if len(result.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(result.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-3))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompanies outputs the employer catalog.
func (p *Printer) PrintCompanies(companies []gap.CompanySummary) {
	if len(companies) == 0 {
		return
	}

	var sb strings.Builder
	for i, company := range companies {
		sb.WriteString(fmt.Sprintf("%s\n", company.ID))
		sb.WriteString(fmt.Sprintf("  %s — %s\n", company.CompanyName, company.Role))
		if i < len(companies)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EMPLOYER CATALOG", sb.String())
}

// PrintAssessmentResult outputs the scored outcome of an assessment.
func (p *Printer) PrintAssessmentResult(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %.2f%%\n", result.Score))
	sb.WriteString(fmt.Sprintf("Gap score: %.2f\n", result.SkillGapScore))
	sb.WriteString("\n")

	if len(result.SkillScores) > 0 {
		sb.WriteString("Per-skill:\n")
		for _, skill := range sortedKeys(result.SkillScores) {
			sb.WriteString(fmt.Sprintf("  %-20s %.2f%%\n", skill, result.SkillScores[skill]))
		}
		sb.WriteString("\n")
	}

	if len(result.Strengths) > 0 {
		sb.WriteString(fmt.Sprintf("Strengths:  %s\n", strings.Join(result.Strengths, ", ")))
	}
	if len(result.Weaknesses) > 0 {
		sb.WriteString(fmt.Sprintf("Weaknesses: %s\n", strings.Join(result.Weaknesses, ", ")))
	}

	p.printBox("ASSESSMENT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTwinSummary outputs the state of a behavioral profile.
func (p *Printer) PrintTwinSummary(summary *types.TwinSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Events:       %d\n", summary.EventsRecorded))
	sb.WriteString(fmt.Sprintf("Consistency:  %.2f\n", summary.Learning.ConsistencyScore))
	if summary.Learning.PreferredTime != "" {
		sb.WriteString(fmt.Sprintf("Study time:   %s\n", summary.Learning.PreferredTime))
	}
	sb.WriteString(fmt.Sprintf("Anxiety:      %.2f\n", summary.Behavior.InterviewAnxiety))
	sb.WriteString(fmt.Sprintf("Risk factors: %d\n", summary.RiskFactorCount))

	if len(summary.SuccessEstimates) > 0 {
		sb.WriteString("\nSuccess estimates:\n")
		for _, employer := range sortedKeys(summary.SuccessEstimates) {
			sb.WriteString(fmt.Sprintf("  %-12s %.2f\n", employer, summary.SuccessEstimates[employer]))
		}
	}

	if len(summary.SkillsTracked) > 0 {
		skills := strings.Join(summary.SkillsTracked, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills tracked: %s\n", skills))
	}

	p.printBox("DIGITAL TWIN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeaknessForecast outputs predicted weaknesses and risk factors.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWeaknessForecast(forecast *twin.WeaknessForecast) {
	if forecast == nil {
		return
	}

	if len(forecast.PredictedWeaknesses) == 0 && len(forecast.RiskFactors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WEAKNESSES PREDICTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Success probability: %.2f\n", forecast.SuccessProbability))
	sb.WriteString(fmt.Sprintf("Readiness:           %s\n", forecast.TimelineToReadiness))
	sb.WriteString("\n")

	for i, weakness := range forecast.PredictedWeaknesses {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", weakness.Skill, weakness.Trend))
		if i >= maxItemsToShow-1 {
			remaining := len(forecast.PredictedWeaknesses) - maxItemsToShow
			if remaining > 0 {
				sb.WriteString(fmt.Sprintf("... and %d more\n", remaining))
			}
			break
		}
	}

	for _, risk := range forecast.RiskFactors {
		factor := risk.Factor
		if len(factor) > 45 {
			factor = factor[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", factor))
	}

	p.printBox("WEAKNESS FORECAST", strings.TrimSuffix(sb.String(), "\n"))
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
