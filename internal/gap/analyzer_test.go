package gap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velionx/placement-engine/internal/types"
)

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil)

	profile := types.RequirementProfile{
		ID:              "google_sde1",
		CompanyName:     "Google",
		Role:            "Software Development Engineer I",
		RequiredSkills:  []string{"dsa", "system design", "python", "problem solving"},
		PreferredSkills: []string{"distributed systems", "machine learning", "go"},
		MinimumCGPA:     7.0,
	}

	result := analyzer.Analyze("student-1", []string{"python", "dsa"}, profile)

	require.NotNil(t, result)
	assert.NotEqual(t, "", result.AnalysisID.String())
	assert.Equal(t, "student-1", result.StudentID)
	assert.Equal(t, "Google", result.CompanyName)

	assert.Contains(t, result.MatchingSkills, "python")
	assert.Contains(t, result.MatchingSkills, "dsa")
	// problem solving is related to dsa (0.7), so it matches too.
	assert.Contains(t, result.MatchingSkills, "problem solving")
	assert.Contains(t, result.MissingSkills, "system design")

	// Every missing skill carries a severity and appears in the priority list.
	for _, skill := range result.MissingSkills {
		assert.Contains(t, result.GapSeverity, skill)
		assert.Contains(t, result.PrioritySkills, skill)
	}

	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.EstimatedPreparationTime)
	assert.Equal(t, 7.0, result.CGPARequirement)
	assert.False(t, result.AnalyzedAt.IsZero())
}

func TestAnalyzer_Analyze_NoGaps(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil)
	profile := types.RequirementProfile{
		ID:             "custom",
		CompanyName:    "Acme",
		Role:           "Engineer",
		RequiredSkills: []string{"python"},
	}

	result := analyzer.Analyze("student-1", []string{"python"}, profile)

	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "Ready!", result.EstimatedPreparationTime)
	assert.Equal(t, 100.0, result.SkillMatchPercentage)
}

func TestAnalyzer_AnalyzeCompany_NotFound(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil)

	_, err := analyzer.AnalyzeCompany("student-1", []string{"python"}, "nonexistent_co")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestAnalyzer_BatchAnalyze_SortedByMatch(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil)

	results, err := analyzer.BatchAnalyze(context.Background(), "student-1",
		[]string{"python", "machine learning", "sql", "statistics"}, nil)
	require.NoError(t, err)
	require.Len(t, results, len(DefaultCatalog()))

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].SkillMatchPercentage, results[i].SkillMatchPercentage,
			"batch results must be sorted best match first")
	}

	// A data-science heavy skill set should rank the data science role first.
	assert.Equal(t, "data_scientist", results[0].CompanyID)
}

func TestAnalyzer_BatchAnalyze_UnknownCompany(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil)

	_, err := analyzer.BatchAnalyze(context.Background(), "student-1", []string{"python"}, []string{"google_sde1", "bogus"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestAnalyzer_Companies(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil)

	companies := analyzer.Companies()
	require.Len(t, companies, 8)
	assert.Equal(t, "google_sde1", companies[0].ID)
	assert.Equal(t, "Google", companies[0].CompanyName)
}
