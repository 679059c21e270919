// Package checks composes text signal extractors into named rule checkers.
// Each checker consumes a draft plus contextual data and returns a
// CheckResult; finding a problem is the normal issue-producing path, never
// an error.
package checks

import "github.com/jonathan/draft-refinery/internal/types"

// Check name constants used in CheckResult.Name and QualityScore.SubScores.
const (
	CheckBanned       = "banned_phrase"
	CheckTone         = "tone"
	CheckATS          = "ats_coverage"
	CheckStructure    = "structure"
	CheckRequirements = "requirement_coverage"
	CheckTruthfulness = "truthfulness"
	CheckPreservation = "metric_preservation"
)

// EmDash is the banned punctuation character with its own severity entry.
const EmDash = "—"

// bannedPhraseSeverity maps each banned phrase to its severity tier. Kept
// as data rather than branching logic so the table can be extended without
// touching control flow.
var bannedPhraseSeverity = map[string]types.Severity{
	// Critical: generic cover-letter openers that get applications discarded
	"i am excited to apply":      types.SeverityCritical,
	"to whom it may concern":     types.SeverityCritical,
	"dear sir or madam":          types.SeverityCritical,
	"i am writing to express":    types.SeverityCritical,

	// Major: cliches recruiters flag, plus banned punctuation
	"team player":          types.SeverityMajor,
	"think outside the box": types.SeverityMajor,
	"synergy":              types.SeverityMajor,
	"go-getter":            types.SeverityMajor,
	"results-driven":       types.SeverityMajor,
	"proven track record":  types.SeverityMajor,
	EmDash:                 types.SeverityMajor,

	// Minor: filler adjectives that add no signal
	"passionate":                     types.SeverityMinor,
	"hardworking":                    types.SeverityMinor,
	"detail-oriented":                types.SeverityMinor,
	"self-starter":                   types.SeverityMinor,
	"dynamic":                        types.SeverityMinor,
	"motivated":                      types.SeverityMinor,
	"excellent communication skills": types.SeverityMinor,
}

// Tone names recognized by the compatibility matrix.
const (
	ToneProfessional   = "professional"
	ToneConversational = "conversational"
	ToneEnthusiastic   = "enthusiastic"
	ToneFormal         = "formal"
	ToneDirect         = "direct"
)

// toneCompatibilityCutoff is the minimum compatibility score for a draft
// tone to be considered compliant with the target tone.
const toneCompatibilityCutoff = 0.70

// toneCompatibility scores every (detected, target) tone pair on 0-1.
// Symmetric by construction; kept as data so pairs can be retuned without
// touching the checker.
var toneCompatibility = map[string]map[string]float64{
	ToneProfessional: {
		ToneProfessional:   1.0,
		ToneFormal:         0.9,
		ToneDirect:         0.8,
		ToneConversational: 0.6,
		ToneEnthusiastic:   0.5,
	},
	ToneFormal: {
		ToneFormal:         1.0,
		ToneProfessional:   0.9,
		ToneDirect:         0.7,
		ToneConversational: 0.4,
		ToneEnthusiastic:   0.3,
	},
	ToneConversational: {
		ToneConversational: 1.0,
		ToneEnthusiastic:   0.8,
		ToneProfessional:   0.6,
		ToneDirect:         0.6,
		ToneFormal:         0.4,
	},
	ToneEnthusiastic: {
		ToneEnthusiastic:   1.0,
		ToneConversational: 0.8,
		ToneProfessional:   0.5,
		ToneDirect:         0.5,
		ToneFormal:         0.3,
	},
	ToneDirect: {
		ToneDirect:         1.0,
		ToneProfessional:   0.8,
		ToneFormal:         0.7,
		ToneConversational: 0.6,
		ToneEnthusiastic:   0.5,
	},
}

// ToneCompatibilityScore looks up the compatibility of a detected tone
// against a target tone. Unknown tones score 0.5 (neutral) rather than
// failing, so a misconfigured target cannot crash an evaluation.
func ToneCompatibilityScore(detected, target string) float64 {
	row, ok := toneCompatibility[detected]
	if !ok {
		return 0.5
	}
	score, ok := row[target]
	if !ok {
		return 0.5
	}
	return score
}
