// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"fmt"

	"github.com/jonathan/draft-refinery/internal/types"
)

// CheckHistoryTruthfulness cross-checks every work-history claim in the draft
// against the system of record. Employer, title, and dates must match
// exactly (case-sensitive); location mismatches are downgraded to warnings
// and never block. Claims referencing synthetic IDs (below the sentinel)
// are exempt. A referenced ID not found in the records is a hard failure.
func CheckHistoryTruthfulness(draft *types.Draft, records []types.WorkHistoryRecord) types.CheckResult {
	if draft.Kind != types.DocumentResume || len(draft.ExperienceClaims) == 0 {
		return types.CheckResult{Name: CheckTruthfulness, SubScore: 100, Passed: true}
	}

	byID := make(map[int64]*types.WorkHistoryRecord, len(records))
	for i := range records {
		byID[records[i].ExperienceID] = &records[i]
	}

	var issues []types.Issue
	checked := 0
	truthful := 0

	for i := range draft.ExperienceClaims {
		claim := &draft.ExperienceClaims[i]
		if claim.IsSynthetic() {
			continue
		}
		checked++

		record, found := byID[claim.ExperienceID]
		if !found {
			issues = append(issues, types.Issue{
				Category: types.CategoryTruthfulness,
				Severity: types.SeverityCritical,
				Message: fmt.Sprintf("experience_id %d not found in stored employment history",
					claim.ExperienceID),
				LocationHint: claim.Employer,
			})
			continue
		}

		issues = append(issues, claimMismatches(claim, record)...)
		if !hasBlockingMismatch(claim, record) {
			truthful++
		}
	}

	sortIssues(issues)

	subScore := 100.0
	if checked > 0 {
		subScore = float64(truthful) / float64(checked) * 100
	}

	// Location-only mismatches never flip the result to failing.
	passed := true
	for _, issue := range issues {
		if issue.Severity == types.SeverityCritical {
			passed = false
			break
		}
	}

	return types.CheckResult{
		Name:     CheckTruthfulness,
		SubScore: subScore,
		Passed:   passed,
		Issues:   issues,
	}
}

// claimMismatches compares one claim to its record field by field.
func claimMismatches(claim *types.ExperienceClaim, record *types.WorkHistoryRecord) []types.Issue {
	var issues []types.Issue

	mismatch := func(field, got, want string) types.Issue {
		return types.Issue{
			Category: types.CategoryTruthfulness,
			Severity: types.SeverityCritical,
			Message: fmt.Sprintf("%s mismatch for experience_id %d: draft says %q, record says %q",
				field, claim.ExperienceID, got, want),
			SuggestedFix: fmt.Sprintf("use the exact recorded %s: %q", field, want),
			LocationHint: record.Employer,
		}
	}

	if claim.Employer != record.Employer {
		issues = append(issues, mismatch("employer", claim.Employer, record.Employer))
	}
	if claim.Title != record.Title {
		issues = append(issues, mismatch("title", claim.Title, record.Title))
	}
	if claim.StartDate != record.StartDate {
		issues = append(issues, mismatch("start date", claim.StartDate, record.StartDate))
	}
	if claim.EndDate != record.EndDate {
		issues = append(issues, mismatch("end date", claim.EndDate, record.EndDate))
	}

	if claim.Location != "" && record.Location != "" && claim.Location != record.Location {
		issues = append(issues, types.Issue{
			Category: types.CategoryTruthfulness,
			Severity: types.SeverityMinor,
			Message: fmt.Sprintf("location mismatch for experience_id %d: draft says %q, record says %q",
				claim.ExperienceID, claim.Location, record.Location),
			SuggestedFix: fmt.Sprintf("use the recorded location %q", record.Location),
			LocationHint: record.Employer,
		})
	}

	return issues
}

// hasBlockingMismatch reports whether the claim differs from the record on
// any field other than location.
func hasBlockingMismatch(claim *types.ExperienceClaim, record *types.WorkHistoryRecord) bool {
	return claim.Employer != record.Employer ||
		claim.Title != record.Title ||
		claim.StartDate != record.StartDate ||
		claim.EndDate != record.EndDate
}
