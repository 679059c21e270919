// Package types provides type definitions for structured data used throughout the draft-refinery system.
package types

// DocumentKind distinguishes the document being evaluated.
type DocumentKind string

// Document kinds
const (
	DocumentResume      DocumentKind = "resume"
	DocumentCoverLetter DocumentKind = "cover_letter"
)

// ExperienceClaim is one work-history reference made by a draft. The
// truthfulness checker cross-checks these fields against the system of
// record. IDs strictly below the synthetic-entry sentinel are
// portfolio/synthetic entries and are exempt from verification.
type ExperienceClaim struct {
	ExperienceID int64  `json:"experience_id"`
	Employer     string `json:"employer"`
	Title        string `json:"title"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"start_date"` // YYYY-MM
	EndDate      string `json:"end_date"`   // YYYY-MM or "present"
}

// Draft is a candidate version of a generated document, not yet accepted.
// Bullets and experience claims are optional structured views of the text
// supplied by the caller; Text is always authoritative for text analysis.
type Draft struct {
	Kind             DocumentKind      `json:"kind"`
	Text             string            `json:"text"`
	Bullets          []string          `json:"bullets,omitempty"`
	ExperienceClaims []ExperienceClaim `json:"experience_claims,omitempty"`
}

// Keyword is one ATS keyword extracted from a job posting.
type Keyword struct {
	Term     string `json:"term"`
	MustHave bool   `json:"must_have"`
}

// Requirement is one ranked job requirement statement.
type Requirement struct {
	Statement string   `json:"statement"`
	Keywords  []string `json:"keywords"`
	Synonyms  []string `json:"synonyms,omitempty"`
}

// EvaluationContext carries the job-side inputs for one evaluation: target
// tone, ATS keyword list, top requirement statements, structural
// constraints, and the candidate's verified work history. Read-only from
// the checkers' perspective.
type EvaluationContext struct {
	UserID           string              `json:"user_id,omitempty"`
	TargetTone       string              `json:"target_tone"`
	Keywords         []Keyword           `json:"keywords"`
	TopRequirements  []Requirement       `json:"top_requirements"`
	RequiredSections []string            `json:"required_sections"`
	MinWords         int                 `json:"min_words"`
	MaxWords         int                 `json:"max_words"`
	MaxLines         int                 `json:"max_lines"` // 0 disables the pagination check
	WorkHistory      []WorkHistoryRecord `json:"work_history,omitempty"`
}

// WorkHistoryRecord is one verified employment entry from the system of
// record. The core never writes to it.
type WorkHistoryRecord struct {
	ExperienceID int64    `json:"experience_id"`
	Employer     string   `json:"employer"`
	Title        string   `json:"title"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"` // YYYY-MM
	EndDate      string   `json:"end_date"`   // YYYY-MM or "present"
	Bullets      []string `json:"bullets,omitempty"`
}

// SyntheticIDFloor is the sentinel below which experience IDs denote
// synthetic/portfolio entries that are never validated against the system
// of record.
const SyntheticIDFloor int64 = -1000

// IsSynthetic reports whether a claim references a synthetic entry.
func (c *ExperienceClaim) IsSynthetic() bool {
	return c.ExperienceID < SyntheticIDFloor
}
