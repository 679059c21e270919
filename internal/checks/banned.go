// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"fmt"
	"sort"

	"github.com/jonathan/draft-refinery/internal/textsig"
	"github.com/jonathan/draft-refinery/internal/types"
)

// CheckBannedPhrases counts banned-phrase and banned-punctuation violations
// by severity tier. Passed means zero critical or major violations; strict
// mode also blocks on minor violations.
func CheckBannedPhrases(draft *types.Draft, strict bool) types.CheckResult {
	// Iterate the table in deterministic order so issue lists are
	// byte-identical across runs.
	phrases := make([]string, 0, len(bannedPhraseSeverity))
	for phrase := range bannedPhraseSeverity {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)

	var issues []types.Issue
	counts := map[types.Severity]int{}

	for _, phrase := range phrases {
		n := textsig.CountPhrase(draft.Text, phrase)
		if n == 0 {
			continue
		}
		severity := bannedPhraseSeverity[phrase]
		counts[severity] += n

		message := fmt.Sprintf("contains banned phrase %q", phrase)
		fix := fmt.Sprintf("remove or reword every occurrence of %q", phrase)
		if phrase == EmDash {
			message = "contains banned punctuation (em-dash)"
			fix = "replace em-dashes with commas, colons, or separate sentences"
		}

		// One issue per occurrence: the issue list is the record of
		// violations the aggregator charges per-violation penalties on.
		for i := 0; i < n; i++ {
			issues = append(issues, types.Issue{
				Category:     types.CategoryBannedPhrase,
				Severity:     severity,
				Message:      message,
				SuggestedFix: fix,
			})
		}
	}

	sortIssues(issues)

	passed := counts[types.SeverityCritical] == 0 && counts[types.SeverityMajor] == 0
	if strict && counts[types.SeverityMinor] > 0 {
		passed = false
	}

	total := counts[types.SeverityCritical] + counts[types.SeverityMajor] + counts[types.SeverityMinor]
	subScore := 100.0
	if total > 0 {
		subScore = 100.0 - float64(counts[types.SeverityCritical]*30+counts[types.SeverityMajor]*15+counts[types.SeverityMinor]*5)
		if subScore < 0 {
			subScore = 0
		}
	}

	return types.CheckResult{
		Name:     CheckBanned,
		SubScore: subScore,
		Passed:   passed,
		Issues:   issues,
	}
}

// sortIssues orders issues critical first, then by message for a stable
// total order.
func sortIssues(issues []types.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Severity.Rank() != issues[j].Severity.Rank() {
			return issues[i].Severity.Rank() < issues[j].Severity.Rank()
		}
		return issues[i].Message < issues[j].Message
	})
}
