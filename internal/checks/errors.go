// Package checks composes text signal extractors into named rule checkers.
package checks

import "fmt"

// ContextError signals structurally invalid checker input (e.g. a missing
// required context field). It is caught at the checker boundary and
// downgraded to a structure Issue so the loop can still terminate cleanly.
type ContextError struct {
	Field   string
	Message string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("invalid evaluation context: %s: %s", e.Field, e.Message)
}
