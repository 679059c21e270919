// Package textsig provides stateless text-signal extractors used by the rule checkers.
package textsig

import "strings"

// LeadingWord returns the first word of a sentence, lowercased and stripped
// of trailing punctuation, for classification against a verb list. Returns
// "" on empty input.
func LeadingWord(sentence string) string {
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return ""
	}
	word := strings.TrimRight(fields[0], ".,!?;:")
	return strings.ToLower(word)
}

// strongVerbs are action verbs considered strong bullet openers.
var strongVerbs = map[string]bool{
	"accelerated": true, "achieved": true, "architected": true, "automated": true,
	"built": true, "created": true, "delivered": true, "designed": true,
	"developed": true, "drove": true, "engineered": true, "implemented": true,
	"improved": true, "increased": true, "launched": true, "led": true,
	"optimized": true, "reduced": true, "scaled": true, "shipped": true,
	"streamlined": true, "transformed": true,
}

// weakVerbs are openers that weaken a bullet.
var weakVerbs = map[string]bool{
	"assisted": true, "helped": true, "participated": true, "responsible": true,
	"supported": true, "worked": true,
}

// IsStrongVerb reports whether word (already lowercased) is a strong action
// verb. Past-tense words outside both lists are treated as strong, matching
// the heuristic used for bullet rewriting.
func IsStrongVerb(word string) bool {
	if strongVerbs[word] {
		return true
	}
	if weakVerbs[word] {
		return false
	}
	return strings.HasSuffix(word, "ed") && len(word) > 3
}

// IsWeakVerb reports whether word (already lowercased) is a known weak opener.
func IsWeakVerb(word string) bool {
	return weakVerbs[word]
}
