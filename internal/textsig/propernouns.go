// Package textsig provides stateless text-signal extractors used by the rule checkers.
package textsig

import "regexp"

// properNounPattern matches runs of 1-4 consecutive capitalized words, each
// word bounded to 30 characters.
var properNounPattern = regexp.MustCompile(`\b[A-Z][A-Za-z0-9&.+\-]{0,29}(?: [A-Z][A-Za-z0-9&.+\-]{0,29}){0,3}\b`)

// singleWordNoise lists capitalized function words that start sentences and
// are not names. Only single-word matches are filtered; a multi-word run is
// always kept.
var singleWordNoise = map[string]bool{
	"A": true, "An": true, "And": true, "As": true, "At": true, "But": true,
	"By": true, "For": true, "I": true, "In": true, "It": true, "My": true,
	"Of": true, "On": true, "Or": true, "Our": true, "That": true,
	"The": true, "This": true, "To": true, "We": true, "With": true,
}

// ExtractProperNouns returns the proper-noun runs found in text, in order
// of appearance, deduplicated. Used to verify company and technology names
// survive a rewrite. Returns nil on empty or noun-free input.
func ExtractProperNouns(text string) []string {
	if text == "" {
		return nil
	}

	matches := properNounPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var nouns []string
	seen := make(map[string]bool)
	for _, m := range matches {
		if singleWordNoise[m] || seen[m] {
			continue
		}
		seen[m] = true
		nouns = append(nouns, m)
	}

	if len(nouns) == 0 {
		return nil
	}
	return nouns
}
