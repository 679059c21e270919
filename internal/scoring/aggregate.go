// Package scoring combines checker sub-scores and issue penalties into a
// single 0-100 quality score under a fixed, documented formula. Given
// identical check results, two independent runs yield the identical score:
// no randomness, no external calls.
package scoring

import (
	"github.com/jonathan/draft-refinery/internal/checks"
	"github.com/jonathan/draft-refinery/internal/types"
)

// Fixed formula constants. Applied in declaration order and summed,
// clamped to [0, 100].
const (
	baseScore = 50.0

	noViolationBonus = 10.0

	criticalPenalty = 15.0
	majorPenalty    = 8.0
	minorPenalty    = 3.0

	toneWeight = 20.0
	atsWeight  = 20.0
)

// Aggregate computes the quality score for one round from its check
// results. previous, when non-nil, is the prior round's score used to
// record the delta.
func Aggregate(results []types.CheckResult, previous *types.QualityScore) types.QualityScore {
	score := baseScore

	critical, major, minor := countBannedViolations(results)

	// Bonus applies only when zero banned-phrase violations of any
	// severity were found; a single minor violation forfeits it.
	if critical+major+minor == 0 {
		score += noViolationBonus
	}

	score -= float64(critical) * criticalPenalty
	score -= float64(major) * majorPenalty
	score -= float64(minor) * minorPenalty

	subScores := make(map[string]float64, len(results))
	for _, result := range results {
		subScores[result.Name] = result.SubScore

		switch result.Name {
		case checks.CheckTone:
			score += toneWeight * (result.SubScore / 100)
		case checks.CheckATS:
			score += atsWeight * (result.SubScore / 100)
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	quality := types.QualityScore{
		Score:     score,
		SubScores: subScores,
	}
	if previous != nil {
		delta := score - previous.Score
		quality.Delta = &delta
	}
	return quality
}

// countBannedViolations tallies banned-phrase and banned-punctuation
// issues by severity across all check results.
func countBannedViolations(results []types.CheckResult) (critical, major, minor int) {
	for _, result := range results {
		for _, issue := range result.Issues {
			if issue.Category != types.CategoryBannedPhrase {
				continue
			}
			switch issue.Severity {
			case types.SeverityCritical:
				critical++
			case types.SeverityMajor:
				major++
			case types.SeverityMinor:
				minor++
			}
		}
	}
	return critical, major, minor
}
