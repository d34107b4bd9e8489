package twin

import (
	"sort"

	"github.com/velionx/placement-engine/internal/types"
)

// consistencyWindowDays is the trailing window used for the consistency
// score: distinct active days divided by the window length.
const consistencyWindowDays = 14

// timeBuckets, in priority order for ties.
var timeBuckets = []string{"morning", "afternoon", "evening", "night"}

// refreshPatterns recomputes consistency and preferred study time from the
// recent event log.
func (a *Aggregator) refreshPatterns(profile *types.BehavioralProfile) {
	if len(profile.Events) == 0 {
		return
	}

	cutoff := a.now().AddDate(0, 0, -consistencyWindowDays)
	activeDays := make(map[string]bool)
	bucketCounts := make(map[string]int)
	for _, event := range profile.Events {
		if !event.Timestamp.After(cutoff) {
			continue
		}
		activeDays[event.Timestamp.Format("2006-01-02")] = true
		bucketCounts[timeBucket(event.Timestamp.Hour())]++
	}

	profile.Learning.ConsistencyScore = float64(len(activeDays)) / float64(consistencyWindowDays)

	best := ""
	bestCount := 0
	for _, bucket := range timeBuckets {
		if bucketCounts[bucket] > bestCount {
			best = bucket
			bestCount = bucketCounts[bucket]
		}
	}
	if bestCount > 0 {
		profile.Learning.PreferredTime = best
	}
}

// timeBucket maps an hour of day to a study-time bucket.
func timeBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}

// trackedSkills lists the skills with evolution history, sorted.
func trackedSkills(profile *types.BehavioralProfile) []string {
	skills := make([]string, 0, len(profile.SkillEvolution))
	for skill := range profile.SkillEvolution {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// recentScores extracts the scores from the tail of a skill's history.
func recentScores(history []types.SkillPoint, n int) []float64 {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	scores := make([]float64, len(history))
	for i, point := range history {
		scores[i] = point.Score
	}
	return scores
}
