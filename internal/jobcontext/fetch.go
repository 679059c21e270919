package jobcontext

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; DraftRefinery/1.0)"

// HTTPSource fetches posting HTML over HTTP and extracts it.
type HTTPSource struct {
	client    *http.Client
	userAgent string
}

// NewHTTPSource creates a source with the default timeout and user agent.
func NewHTTPSource() *HTTPSource {
	return &HTTPSource{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
}

// FetchPosting retrieves a job posting URL and extracts its content.
func (s *HTTPSource) FetchPosting(ctx context.Context, urlStr string) (*Posting, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ExtractionError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &ExtractionError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &ExtractionError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ExtractionError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ExtractionError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return ExtractPosting(string(body), urlStr)
}
