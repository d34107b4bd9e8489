// Package gap implements skill matching against requirement profiles and
// severity-classified gap prioritization.
package gap

import (
	"math"

	"github.com/velionx/placement-engine/internal/ontology"
)

// matchThreshold is the minimum best-similarity for a required skill to
// count as matched. Direct ontology edges (0.7) clear it; shared-neighbour
// scores (< 0.7) do not.
const matchThreshold = 0.6

// MatchResult is the outcome of matching a student skill set against a
// required skill set.
type MatchResult struct {
	Matching   []string
	Missing    []string
	Percentage float64
}

// Match scores each required skill by its best similarity against the
// student's skills. Skills at or above the match threshold are matching and
// contribute their similarity to the total; the rest are missing. The
// percentage is the similarity total over the number of required skills,
// scaled to 0-100 and rounded to 2 decimals. An empty required set yields
// 100%.
func Match(o *ontology.Ontology, studentSkills, requiredSkills []string) MatchResult {
	student := normalizeAll(studentSkills)
	required := normalizeAll(requiredSkills)

	result := MatchResult{
		Matching: make([]string, 0, len(required)),
		Missing:  make([]string, 0),
	}

	totalScore := 0.0
	for _, req := range required {
		best := 0.0
		for _, skill := range student {
			if sim := o.Similarity(req, skill); sim > best {
				best = sim
			}
		}
		if best >= matchThreshold {
			result.Matching = append(result.Matching, req)
			totalScore += best
		} else {
			result.Missing = append(result.Missing, req)
		}
	}

	if len(required) == 0 {
		result.Percentage = 100.0
		return result
	}
	result.Percentage = round2(totalScore / float64(len(required)) * 100)
	return result
}

// normalizeAll normalizes a skill list, dropping empty tokens.
func normalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := ontology.Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
