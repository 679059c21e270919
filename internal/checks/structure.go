// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/draft-refinery/internal/textsig"
	"github.com/jonathan/draft-refinery/internal/types"
)

// charsPerLine is the estimated number of characters per rendered line,
// used for the pagination heuristic.
const charsPerLine = 100

// CheckDocumentStructure validates that required sections exist, the word count is
// inside the configured band, and the estimated line count fits the page
// budget. Malformed input is downgraded to a structure issue rather than
// propagated, so the loop can still terminate cleanly.
func CheckDocumentStructure(draft *types.Draft, evalCtx *types.EvaluationContext, strict bool) types.CheckResult {
	var issues []types.Issue

	if err := validateStructureInput(draft, evalCtx); err != nil {
		issues = append(issues, types.Issue{
			Category: types.CategoryStructure,
			Severity: types.SeverityCritical,
			Message:  err.Error(),
		})
		return types.CheckResult{Name: CheckStructure, SubScore: 0, Passed: false, Issues: issues}
	}

	lowerText := strings.ToLower(draft.Text)

	// Required sections
	missingSections := 0
	for _, section := range evalCtx.RequiredSections {
		if !strings.Contains(lowerText, strings.ToLower(section)) {
			missingSections++
			issues = append(issues, types.Issue{
				Category:     types.CategoryStructure,
				Severity:     types.SeverityMajor,
				Message:      fmt.Sprintf("required section %q is missing", section),
				SuggestedFix: fmt.Sprintf("add a %q section", section),
				LocationHint: section,
			})
		}
	}

	// Word-count band
	words := len(strings.Fields(draft.Text))
	if evalCtx.MinWords > 0 && words < evalCtx.MinWords {
		issues = append(issues, types.Issue{
			Category:     types.CategoryStructure,
			Severity:     types.SeverityMajor,
			Message:      fmt.Sprintf("draft has %d words, minimum is %d", words, evalCtx.MinWords),
			SuggestedFix: "expand thin sections with specifics from the work history",
		})
	}
	if evalCtx.MaxWords > 0 && words > evalCtx.MaxWords {
		issues = append(issues, types.Issue{
			Category:     types.CategoryStructure,
			Severity:     types.SeverityMajor,
			Message:      fmt.Sprintf("draft has %d words, maximum is %d", words, evalCtx.MaxWords),
			SuggestedFix: "cut the least relevant content until under the limit",
		})
	}

	// Pagination budget for layout-constrained documents
	if evalCtx.MaxLines > 0 {
		estimated := EstimateLines(draft.Text)
		if estimated > evalCtx.MaxLines {
			issues = append(issues, types.Issue{
				Category:     types.CategoryStructure,
				Severity:     types.SeverityMajor,
				Message:      fmt.Sprintf("estimated %d lines exceeds the %d-line page budget", estimated, evalCtx.MaxLines),
				SuggestedFix: "shorten the longest bullets to reclaim lines",
			})
		}
	}

	issues = append(issues, verbDiversityIssues(draft.Bullets)...)
	sortIssues(issues)

	blocking := 0
	for _, issue := range issues {
		if issue.Severity == types.SeverityCritical || issue.Severity == types.SeverityMajor {
			blocking++
		} else if strict {
			blocking++
		}
	}

	subScore := 100.0 - float64(len(issues))*15
	if subScore < 0 {
		subScore = 0
	}

	return types.CheckResult{
		Name:     CheckStructure,
		SubScore: subScore,
		Passed:   blocking == 0,
		Issues:   issues,
	}
}

// validateStructureInput rejects structurally invalid input at the checker
// boundary.
func validateStructureInput(draft *types.Draft, evalCtx *types.EvaluationContext) error {
	if draft == nil || strings.TrimSpace(draft.Text) == "" {
		return &ContextError{Field: "draft.text", Message: "draft text is empty"}
	}
	if evalCtx == nil {
		return &ContextError{Field: "context", Message: "evaluation context is required"}
	}
	if evalCtx.MinWords > 0 && evalCtx.MaxWords > 0 && evalCtx.MinWords > evalCtx.MaxWords {
		return &ContextError{Field: "min_words", Message: "word-count band is inverted"}
	}
	return nil
}

// EstimateLines estimates rendered lines for text using the fixed
// chars-per-line heuristic. Every physical line contributes at least one
// rendered line.
func EstimateLines(text string) int {
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		n := int(math.Ceil(float64(len(line)) / charsPerLine))
		if n < 1 {
			n = 1
		}
		lines += n
	}
	return lines
}

// verbDiversityIssues flags weak and repeated leading verbs across bullets.
func verbDiversityIssues(bullets []string) []types.Issue {
	var issues []types.Issue
	seen := map[string]bool{}
	flaggedRepeat := map[string]bool{}

	for _, bullet := range bullets {
		verb := textsig.LeadingWord(bullet)
		if verb == "" {
			continue
		}
		if textsig.IsWeakVerb(verb) {
			issues = append(issues, types.Issue{
				Category:     types.CategoryContent,
				Severity:     types.SeverityMinor,
				Message:      fmt.Sprintf("bullet opens with weak verb %q", verb),
				SuggestedFix: "open with a strong action verb",
				LocationHint: bullet,
			})
		}
		if seen[verb] && !flaggedRepeat[verb] {
			flaggedRepeat[verb] = true
			issues = append(issues, types.Issue{
				Category:     types.CategoryContent,
				Severity:     types.SeverityMinor,
				Message:      fmt.Sprintf("leading verb %q is repeated across bullets", verb),
				SuggestedFix: "vary bullet openers for readability",
			})
		}
		seen[verb] = true
	}

	return issues
}
