// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"fmt"

	"github.com/jonathan/draft-refinery/internal/textsig"
	"github.com/jonathan/draft-refinery/internal/types"
)

// CheckATSCoverage computes covered/missing counts against the job's
// extracted-skill keyword list. A missing must-have keyword is a blocking
// omission; missing nice-to-haves are minor. Strict mode requires full
// coverage to pass.
func CheckATSCoverage(draft *types.Draft, keywords []types.Keyword, strict bool) types.CheckResult {
	if len(keywords) == 0 {
		return types.CheckResult{Name: CheckATS, SubScore: 100, Passed: true}
	}

	var issues []types.Issue
	covered := 0
	missingMustHave := 0

	for _, kw := range keywords {
		if textsig.KeywordInContext(draft.Text, kw.Term) {
			covered++
			continue
		}

		if kw.MustHave {
			missingMustHave++
			issues = append(issues, types.Issue{
				Category:     types.CategoryATSCoverage,
				Severity:     types.SeverityCritical,
				Message:      fmt.Sprintf("must-have keyword %q is missing from the draft", kw.Term),
				SuggestedFix: fmt.Sprintf("work %q into a relevant bullet or summary line", kw.Term),
			})
		} else {
			issues = append(issues, types.Issue{
				Category:     types.CategoryATSCoverage,
				Severity:     types.SeverityMinor,
				Message:      fmt.Sprintf("keyword %q is missing from the draft", kw.Term),
				SuggestedFix: fmt.Sprintf("mention %q where it genuinely applies", kw.Term),
			})
		}
	}

	sortIssues(issues)

	percent := float64(covered) / float64(len(keywords)) * 100

	passed := missingMustHave == 0
	if strict && covered < len(keywords) {
		passed = false
	}

	return types.CheckResult{
		Name:     CheckATS,
		SubScore: percent,
		Passed:   passed,
		Issues:   issues,
	}
}
