// Package refine orchestrates the draft -> evaluate -> accept-or-revise ->
// regenerate loop across a bounded number of rounds.
package refine

import "fmt"

// UpstreamError represents a failure in an external collaborator (the
// regeneration service or the work-history lookup).
type UpstreamError struct {
	Service string
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream %s failure: %s: %v", e.Service, e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream %s failure: %s", e.Service, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
