package gap

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/velionx/placement-engine/internal/ontology"
	"github.com/velionx/placement-engine/internal/types"
)

// ErrCompanyNotFound is returned when a requirement profile id is absent
// from the analyzer's catalog. Caller error, not retried.
var ErrCompanyNotFound = errors.New("company requirement profile not found")

const (
	// maxRecommendations limits how many priority gaps get a recommendation.
	maxRecommendations = 5
	// maxRelatedInRecommendation limits related skills listed per recommendation.
	maxRelatedInRecommendation = 3
	// batchConcurrency bounds concurrent analyses in BatchAnalyze.
	batchConcurrency = 4
)

// Analyzer performs gap analysis of a student skill set against requirement
// profiles. An Analyzer is safe for concurrent use: the ontology and
// catalog are read-only after construction.
type Analyzer struct {
	ontology *ontology.Ontology
	catalog  map[string]types.RequirementProfile
	logger   *zap.Logger
}

// NewAnalyzer builds an Analyzer. A nil ontology uses the default catalog
// ontology; a nil catalog uses the built-in employer profiles; a nil logger
// is replaced with a no-op logger.
func NewAnalyzer(o *ontology.Ontology, catalog map[string]types.RequirementProfile, logger *zap.Logger) *Analyzer {
	if o == nil {
		o = ontology.Default()
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{ontology: o, catalog: catalog, logger: logger}
}

// Ontology exposes the analyzer's ontology for collaborators that need
// similarity scoring directly.
func (a *Analyzer) Ontology() *ontology.Ontology {
	return a.ontology
}

// Companies lists the catalog's requirement profiles in a fixed order.
func (a *Analyzer) Companies() []CompanySummary {
	summaries := make([]CompanySummary, 0, len(a.catalog))
	for _, id := range catalogOrder {
		if profile, ok := a.catalog[id]; ok {
			summaries = append(summaries, CompanySummary{
				ID:          id,
				CompanyName: profile.CompanyName,
				Role:        profile.Role,
			})
		}
	}
	// Catalog entries outside the fixed order (custom catalogs) follow, sorted by id.
	extra := make([]CompanySummary, 0)
	for id, profile := range a.catalog {
		if !containsID(catalogOrder, id) {
			extra = append(extra, CompanySummary{ID: id, CompanyName: profile.CompanyName, Role: profile.Role})
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].ID < extra[j].ID })
	return append(summaries, extra...)
}

// Profile returns the catalog requirement profile for an id.
func (a *Analyzer) Profile(companyID string) (types.RequirementProfile, error) {
	profile, ok := a.catalog[companyID]
	if !ok {
		return types.RequirementProfile{}, fmt.Errorf("%w: %s", ErrCompanyNotFound, companyID)
	}
	return profile, nil
}

// Analyze runs a full gap analysis of the student's skills against a
// requirement profile: required and preferred matching, per-gap severity,
// priority ordering, recommendations, and the aggregate preparation time.
func (a *Analyzer) Analyze(studentID string, studentSkills []string, profile types.RequirementProfile) *types.GapAnalysisResult {
	required := Match(a.ontology, studentSkills, profile.RequiredSkills)
	preferred := Match(a.ontology, studentSkills, profile.PreferredSkills)

	severities := make(map[string]types.Severity, len(required.Missing))
	for _, skill := range required.Missing {
		severities[skill] = ClassifySeverity(a.ontology, skill, studentSkills)
	}

	priority := Prioritize(required.Missing, severities)
	totalWeeks := TotalPreparationWeeks(required.Missing, severities)

	result := &types.GapAnalysisResult{
		AnalysisID:               uuid.New(),
		StudentID:                studentID,
		CompanyID:                profile.ID,
		CompanyName:              profile.CompanyName,
		TargetRole:               profile.Role,
		MatchingSkills:           required.Matching,
		MissingSkills:            required.Missing,
		SkillMatchPercentage:     required.Percentage,
		PreferredMatching:        preferred.Matching,
		PreferredMissing:         preferred.Missing,
		PreferredMatchPercentage: preferred.Percentage,
		GapSeverity:              severities,
		PrioritySkills:           priority,
		Recommendations:          a.recommendations(priority, severities),
		EstimatedPreparationTime: formatPreparationTime(totalWeeks),
		CGPARequirement:          profile.MinimumCGPA,
		AnalyzedAt:               time.Now().UTC(),
	}

	a.logger.Debug("gap analysis complete",
		zap.String("student_id", studentID),
		zap.String("company", profile.CompanyName),
		zap.Float64("match_percentage", result.SkillMatchPercentage),
		zap.Int("missing_skills", len(result.MissingSkills)),
	)

	return result
}

// AnalyzeCompany runs Analyze against a catalog profile.
func (a *Analyzer) AnalyzeCompany(studentID string, studentSkills []string, companyID string) (*types.GapAnalysisResult, error) {
	profile, err := a.Profile(companyID)
	if err != nil {
		return nil, err
	}
	return a.Analyze(studentID, studentSkills, profile), nil
}

// BatchAnalyze analyzes the student against multiple catalog profiles
// concurrently and returns results sorted by match percentage, best first.
// A nil companyIDs analyzes the whole catalog. Unknown ids fail the batch.
func (a *Analyzer) BatchAnalyze(ctx context.Context, studentID string, studentSkills []string, companyIDs []string) ([]*types.GapAnalysisResult, error) {
	if companyIDs == nil {
		companyIDs = make([]string, 0, len(a.catalog))
		for _, summary := range a.Companies() {
			companyIDs = append(companyIDs, summary.ID)
		}
	}

	results := make([]*types.GapAnalysisResult, len(companyIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, companyID := range companyIDs {
		i, companyID := i, companyID
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := a.AnalyzeCompany(studentID, studentSkills, companyID)
			if err != nil {
				return err
			}
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SkillMatchPercentage > results[j].SkillMatchPercentage
	})
	return results, nil
}

// recommendations composes remediation hints for the top priority gaps.
func (a *Analyzer) recommendations(prioritySkills []string, severities map[string]types.Severity) []string {
	count := min(len(prioritySkills), maxRecommendations)
	recs := make([]string, 0, count)
	for _, skill := range prioritySkills[:count] {
		severity := severities[skill]
		estimate := EstimateLearningTime(skill, severity)
		rec := fmt.Sprintf("Learn %s (%s priority) - Est. %s", strings.ToUpper(skill), severity, estimate)
		if related := a.ontology.Related(skill); len(related) > 0 {
			limit := min(len(related), maxRelatedInRecommendation)
			rec += fmt.Sprintf(". Build on your knowledge of: %s", strings.Join(related[:limit], ", "))
		}
		recs = append(recs, rec)
	}
	return recs
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
