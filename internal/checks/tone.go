// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"fmt"
	"strings"

	"github.com/jonathan/draft-refinery/internal/types"
)

// Marker words per tone for the deterministic classifier. Matching is
// case-insensitive substring over the lowercased draft.
var toneMarkers = map[string][]string{
	ToneFormal: {
		"dear sir", "furthermore", "hereby", "moreover", "pursuant",
		"respectfully", "sincerely", "would like to",
	},
	ToneEnthusiastic: {
		"!", "amazing", "can't wait", "excited", "love", "thrilled",
	},
	ToneConversational: {
		"can't", "don't", "i'm", "it's", "let's", "we're", "you'll",
	},
	ToneDirect: {
		"bottom line", "in short", "no-nonsense",
	},
}

// tonePriority breaks classification ties deterministically.
var tonePriority = []string{
	ToneProfessional, ToneFormal, ToneDirect, ToneConversational, ToneEnthusiastic,
}

// ClassifyTone classifies a draft's tone with a marker-word heuristic. The
// classifier is intentionally deterministic so evaluate() stays
// byte-reproducible; defaults to professional when nothing stands out.
func ClassifyTone(text string) string {
	lower := strings.ToLower(text)

	scores := map[string]int{}
	for tone, markers := range toneMarkers {
		for _, marker := range markers {
			scores[tone] += strings.Count(lower, marker)
		}
	}

	// Short, punchy sentences lean direct.
	if avg := averageSentenceWords(text); avg > 0 && avg <= 10 {
		scores[ToneDirect]++
	}

	best := ToneProfessional
	bestScore := 0
	for _, tone := range tonePriority {
		if scores[tone] > bestScore {
			best = tone
			bestScore = scores[tone]
		}
	}
	return best
}

// averageSentenceWords returns the mean word count per sentence, 0 for
// empty text.
func averageSentenceWords(text string) float64 {
	sentences := 0
	words := len(strings.Fields(text))
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			sentences++
		}
	}
	if sentences == 0 || words == 0 {
		return 0
	}
	return float64(words) / float64(sentences)
}

// CheckToneCompatibility classifies the draft's tone and scores it against
// the target tone using the compatibility matrix. Compliant when the score
// clears the fixed cutoff.
func CheckToneCompatibility(draft *types.Draft, targetTone string) types.CheckResult {
	if targetTone == "" {
		targetTone = ToneProfessional
	}

	detected := ClassifyTone(draft.Text)
	score := ToneCompatibilityScore(detected, targetTone)
	compliant := score >= toneCompatibilityCutoff

	var issues []types.Issue
	if !compliant {
		issues = append(issues, types.Issue{
			Category: types.CategoryTone,
			Severity: types.SeverityMajor,
			Message: fmt.Sprintf("draft reads as %s but the target tone is %s (compatibility %.2f)",
				detected, targetTone, score),
			SuggestedFix: fmt.Sprintf("rewrite in a %s register", targetTone),
		})
	}

	return types.CheckResult{
		Name:     CheckTone,
		SubScore: score * 100,
		Passed:   compliant,
		Issues:   issues,
	}
}
