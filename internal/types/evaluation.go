// Package types provides type definitions for structured data used throughout the draft-refinery system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Severity levels for issues, ordered critical > major > minor.
type Severity string

// Severity constants
const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// severityRank orders severities for sorting (lower rank sorts first)
var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityMajor:    1,
	SeverityMinor:    2,
}

// Rank returns the sort rank of a severity (critical first). Unknown
// severities sort last.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// Category identifies which class of check produced an issue.
type Category string

// Category constants
const (
	CategoryBannedPhrase Category = "banned_phrase"
	CategoryTone         Category = "tone"
	CategoryATSCoverage  Category = "ats_coverage"
	CategoryStructure    Category = "structure"
	CategoryTruthfulness Category = "truthfulness"
	CategoryContent      Category = "content"
)

// Issue represents a single detected problem in a draft.
// Issues are immutable once created; a fresh list is produced on every
// evaluation round.
type Issue struct {
	Category     Category `json:"category"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	SuggestedFix string   `json:"suggested_fix,omitempty"`
	LocationHint string   `json:"location_hint,omitempty"`
}

// CheckResult is the output of one rule checker: a sub-score, a pass/fail
// flag at the requested strictness, and the issues found.
type CheckResult struct {
	Name     string  `json:"name"`
	SubScore float64 `json:"sub_score"`
	Passed   bool    `json:"passed"`
	Issues   []Issue `json:"issues"`
}

// HasCritical reports whether any issue in the result is critical.
func (r *CheckResult) HasCritical() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// QualityScore is the single 0-100 score for one round plus the component
// sub-scores that produced it. Delta is only meaningful on rounds after the
// first.
type QualityScore struct {
	Score     float64            `json:"score"`
	SubScores map[string]float64 `json:"sub_scores"`
	Delta     *float64           `json:"delta,omitempty"`
}

// EvaluationRound is one pass through the loop. Rounds accumulate into an
// ordered, append-only history for the life of one generation request and
// are never mutated after creation.
type EvaluationRound struct {
	ID           uuid.UUID     `json:"id"`
	Round        int           `json:"round"` // 1-based
	DraftText    string        `json:"draft_text"`
	CheckResults []CheckResult `json:"check_results"`
	Quality      QualityScore  `json:"quality"`
	Passed       bool          `json:"passed"`
	ShouldRetry  bool          `json:"should_retry"`
	EvaluatedAt  time.Time     `json:"evaluated_at"`
}

// AllIssues collects issues from every check result, in check order.
func (r *EvaluationRound) AllIssues() []Issue {
	var issues []Issue
	for _, result := range r.CheckResults {
		issues = append(issues, result.Issues...)
	}
	return issues
}

// HasCriticalIssue reports whether any checker produced a critical issue.
func (r *EvaluationRound) HasCriticalIssue() bool {
	for i := range r.CheckResults {
		if r.CheckResults[i].HasCritical() {
			return true
		}
	}
	return false
}

// RefinementResult is the outcome of a full generate-with-refinement run.
type RefinementResult struct {
	RequestID          uuid.UUID         `json:"request_id"`
	FinalDraft         string            `json:"final_draft"`
	Rounds             []EvaluationRound `json:"rounds"`
	Accepted           bool              `json:"accepted"`
	RegenerationFailed bool              `json:"regeneration_failed,omitempty"`
}
