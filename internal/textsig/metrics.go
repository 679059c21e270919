// Package textsig provides stateless text-signal extractors used by the rule checkers.
package textsig

import (
	"regexp"
	"sort"
)

// metricPatterns are tried in priority order; a later pattern never claims
// text already covered by an earlier one ($1,250,000 is one currency token,
// not a currency token plus a comma-grouped integer).
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d{1,3}(?:,\d{3}){1,5}(?:\.\d{1,2})?`), // $1,250,000
	regexp.MustCompile(`\$\d{1,9}(?:\.\d{1,2})?[KMBkmb]\b`),      // $4.5M, $500K
	regexp.MustCompile(`\$\d{1,9}(?:\.\d{1,2})?`),                // $1200
	regexp.MustCompile(`\d{1,3}(?:\.\d{1,2})?%`),                 // 37.5%
	regexp.MustCompile(`\b\d{1,3}(?:,\d{3}){1,5}\b`),             // 12,000
	regexp.MustCompile(`\b\d{1,4}(?:\.\d{1,2})?[xX]\b`),          // 4.5x
}

// ExtractMetrics returns every metric token in text, in order of
// appearance: percentages, currency amounts (with K/M/B suffixes),
// comma-grouped integers, and decimal multipliers. Returns nil on empty or
// metric-free input.
func ExtractMetrics(text string) []string {
	if text == "" {
		return nil
	}

	type span struct{ start, end int }
	var taken []span

	overlaps := func(start, end int) bool {
		for _, s := range taken {
			if start < s.end && end > s.start {
				return true
			}
		}
		return false
	}

	for _, re := range metricPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			taken = append(taken, span{loc[0], loc[1]})
		}
	}

	if len(taken) == 0 {
		return nil
	}

	sort.Slice(taken, func(i, j int) bool { return taken[i].start < taken[j].start })

	tokens := make([]string, 0, len(taken))
	for _, s := range taken {
		tokens = append(tokens, text[s.start:s.end])
	}
	return tokens
}
