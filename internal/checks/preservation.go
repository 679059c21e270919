// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"fmt"
	"strings"

	"github.com/jonathan/draft-refinery/internal/textsig"
	"github.com/jonathan/draft-refinery/internal/types"
)

// CheckMetricPreservation verifies that every metric token and proper noun from
// the original text is present verbatim in the rewrite. Any omission is a
// hard validation failure.
func CheckMetricPreservation(original, rewrite string) types.CheckResult {
	var issues []types.Issue

	for _, metric := range textsig.ExtractMetrics(original) {
		if !strings.Contains(rewrite, metric) {
			issues = append(issues, types.Issue{
				Category:     types.CategoryContent,
				Severity:     types.SeverityCritical,
				Message:      fmt.Sprintf("metric %q from the original was dropped by the rewrite", metric),
				SuggestedFix: fmt.Sprintf("keep %q verbatim", metric),
			})
		}
	}

	for _, noun := range textsig.ExtractProperNouns(original) {
		if !strings.Contains(rewrite, noun) {
			issues = append(issues, types.Issue{
				Category:     types.CategoryContent,
				Severity:     types.SeverityCritical,
				Message:      fmt.Sprintf("proper noun %q from the original was dropped by the rewrite", noun),
				SuggestedFix: fmt.Sprintf("keep %q verbatim", noun),
			})
		}
	}

	sortIssues(issues)

	subScore := 100.0
	if len(issues) > 0 {
		subScore = 0
	}

	return types.CheckResult{
		Name:     CheckPreservation,
		SubScore: subScore,
		Passed:   len(issues) == 0,
		Issues:   issues,
	}
}

// GuardRewrite returns the rewrite when it preserves every metric and
// proper noun of the original, and the original otherwise. A rewrite is
// discarded rather than silently replacing a non-preserving version.
func GuardRewrite(original, rewrite string) (text string, preserved bool) {
	result := CheckMetricPreservation(original, rewrite)
	if !result.Passed {
		return original, false
	}
	return rewrite, true
}
