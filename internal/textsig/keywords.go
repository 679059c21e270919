// Package textsig provides stateless text-signal extractors used by the rule checkers.
package textsig

import "strings"

// contextWindow is the number of characters inspected around a keyword hit
// to reject false positives.
const contextWindow = 60

// noiseMarkers flag surrounding text that makes a keyword hit meaningless:
// URLs and boilerplate benefits-section language.
var noiseMarkers = []string{
	"://",
	"www.",
	"401k",
	"401(k)",
	"dental",
	"equal opportunity",
	"insurance",
}

// KeywordInContext reports whether keyword occurs in text with word
// boundaries AND in a meaningful context: hits whose surrounding window is
// URL or benefits-section noise are rejected. Returns false on empty input.
func KeywordInContext(text, keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if text == "" || keyword == "" {
		return false
	}

	for _, loc := range compilePhrase(keyword).FindAllStringIndex(text, -1) {
		start := loc[0] - contextWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + contextWindow
		if end > len(text) {
			end = len(text)
		}

		window := strings.ToLower(text[start:end])
		noisy := false
		for _, marker := range noiseMarkers {
			if strings.Contains(window, marker) {
				noisy = true
				break
			}
		}
		if !noisy {
			return true
		}
	}

	return false
}
