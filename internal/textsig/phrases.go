// Package textsig provides stateless text-signal extractors used by the rule
// checkers. All patterns use RE2 with bounded repetition counts so they stay
// linear-time on attacker-influenced text (job descriptions, user notes).
package textsig

import (
	"regexp"
	"strings"
	"sync"
)

// phraseCache holds compiled phrase patterns so repeated evaluations do not
// recompile. Compilation is deterministic, so caching cannot change results.
var phraseCache sync.Map // string -> *regexp.Regexp

// isWordChar reports whether a byte participates in \b word boundaries.
func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}

// compilePhrase builds a case-insensitive matcher for a phrase. Word
// boundaries are anchored only where the phrase itself starts or ends with a
// word character, so punctuation-only entries (e.g. a bare em-dash) still
// match.
func compilePhrase(phrase string) *regexp.Regexp {
	if cached, ok := phraseCache.Load(phrase); ok {
		return cached.(*regexp.Regexp)
	}

	pattern := regexp.QuoteMeta(phrase)
	if len(phrase) > 0 && isWordChar(phrase[0]) {
		pattern = `\b` + pattern
	}
	if len(phrase) > 0 && isWordChar(phrase[len(phrase)-1]) {
		pattern += `\b`
	}

	re := regexp.MustCompile(`(?i)` + pattern)
	phraseCache.Store(phrase, re)
	return re
}

// CountPhrase counts case-insensitive, word-boundary occurrences of phrase
// in text. A phrase never matches inside a longer word ("art" does not match
// "smart"). Returns 0 on empty input.
func CountPhrase(text, phrase string) int {
	phrase = strings.TrimSpace(phrase)
	if text == "" || phrase == "" {
		return 0
	}
	return len(compilePhrase(phrase).FindAllStringIndex(text, -1))
}

// ContainsPhrase reports whether phrase occurs in text under the same
// matching rules as CountPhrase.
func ContainsPhrase(text, phrase string) bool {
	phrase = strings.TrimSpace(phrase)
	if text == "" || phrase == "" {
		return false
	}
	return compilePhrase(phrase).MatchString(text)
}
