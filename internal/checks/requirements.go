// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"fmt"
	"strings"

	"github.com/jonathan/draft-refinery/internal/textsig"
	"github.com/jonathan/draft-refinery/internal/types"
)

// maxRequirementsChecked bounds how many top requirements are verified.
const maxRequirementsChecked = 3

// CheckRequirementCoverage verifies the top job requirements are each
// addressed by at least one sentence via keyword or synonym presence.
func CheckRequirementCoverage(draft *types.Draft, requirements []types.Requirement) types.CheckResult {
	if len(requirements) == 0 {
		return types.CheckResult{Name: CheckRequirements, SubScore: 100, Passed: true}
	}

	top := requirements
	if len(top) > maxRequirementsChecked {
		top = top[:maxRequirementsChecked]
	}

	var issues []types.Issue
	covered := 0

	for _, req := range top {
		if requirementAddressed(draft.Text, req) {
			covered++
			continue
		}
		issues = append(issues, types.Issue{
			Category:     types.CategoryContent,
			Severity:     types.SeverityMajor,
			Message:      fmt.Sprintf("requirement not addressed: %s", req.Statement),
			SuggestedFix: fmt.Sprintf("add a sentence demonstrating %q", strings.Join(req.Keywords, ", ")),
		})
	}

	sortIssues(issues)

	return types.CheckResult{
		Name:     CheckRequirements,
		SubScore: float64(covered) / float64(len(top)) * 100,
		Passed:   covered == len(top),
		Issues:   issues,
	}
}

// requirementAddressed reports whether any keyword or synonym of the
// requirement appears in the draft in a meaningful context.
func requirementAddressed(text string, req types.Requirement) bool {
	for _, kw := range req.Keywords {
		if textsig.KeywordInContext(text, kw) {
			return true
		}
	}
	for _, syn := range req.Synonyms {
		if textsig.KeywordInContext(text, syn) {
			return true
		}
	}
	return false
}
