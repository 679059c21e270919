// Package jobcontext turns raw job-posting HTML into the keyword and
// requirement context that drafts are evaluated against.
package jobcontext

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/draft-refinery/internal/types"
)

// Posting is the extracted essence of one job posting.
type Posting struct {
	URL      string
	Title    string
	Text     string
	Keywords []types.Keyword
}

// ExtractionError represents a failure to parse or extract posting content.
type ExtractionError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.URL, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// postingSelectors are tried in order to locate the job description block.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// mustHaveMarkers flag requirement phrasing that makes a skill mandatory
// rather than preferred.
var mustHaveMarkers = []string{
	"required",
	"must have",
	"must be",
	"minimum",
	"at least",
}

// skillLexicon lists skill terms recognized in posting text. Lowercase.
var skillLexicon = []string{
	"aws", "azure", "ci/cd", "docker", "gcp", "go", "grafana", "graphql",
	"java", "javascript", "kafka", "kubernetes", "linux", "mongodb",
	"mysql", "node.js", "postgresql", "prometheus", "python", "rabbitmq",
	"react", "redis", "rest", "ruby", "rust", "scala", "sql", "terraform",
	"typescript",
}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)
var blankLines = regexp.MustCompile(`\n{3,}`)

// ExtractPosting parses job-posting HTML and returns its title, cleaned
// description text, and the skill keywords found in it.
func ExtractPosting(html, sourceURL string) (*Posting, error) {
	if strings.TrimSpace(html) == "" {
		return nil, &ExtractionError{URL: sourceURL, Message: "empty HTML document"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ExtractionError{URL: sourceURL, Message: "failed to parse HTML", Cause: err}
	}

	// Strip navigation and script noise before text extraction.
	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	text := cleanWhitespace(content.Text())
	if text == "" {
		return nil, &ExtractionError{URL: sourceURL, Message: "no textual content found"}
	}

	return &Posting{
		URL:      sourceURL,
		Title:    title,
		Text:     text,
		Keywords: extractKeywords(text),
	}, nil
}

// EvaluationContext converts the posting into checker input. Tone and any
// structural constraints come from the caller.
func (p *Posting) EvaluationContext(targetTone string) *types.EvaluationContext {
	return &types.EvaluationContext{
		TargetTone: targetTone,
		Keywords:   p.Keywords,
	}
}

// extractKeywords scans the posting text for known skill terms and marks
// each as must-have when its surrounding line uses requirement phrasing.
func extractKeywords(text string) []types.Keyword {
	lower := strings.ToLower(text)
	lines := strings.Split(lower, "\n")

	found := make(map[string]bool)
	for _, term := range skillLexicon {
		pattern := regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(term) + `($|[^a-z0-9+])`)
		for _, line := range lines {
			if !pattern.MatchString(line) {
				continue
			}
			mustHave := found[term]
			for _, marker := range mustHaveMarkers {
				if strings.Contains(line, marker) {
					mustHave = true
					break
				}
			}
			found[term] = mustHave
		}
	}

	terms := make([]string, 0, len(found))
	for term := range found {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	keywords := make([]types.Keyword, 0, len(terms))
	for _, term := range terms {
		keywords = append(keywords, types.Keyword{Term: term, MustHave: found[term]})
	}
	return keywords
}

// cleanWhitespace collapses runs of spaces and blank lines left behind by
// HTML-to-text conversion.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
