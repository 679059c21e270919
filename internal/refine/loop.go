// Package refine orchestrates the draft -> evaluate -> accept-or-revise ->
// regenerate loop across a bounded number of rounds.
package refine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/draft-refinery/internal/checks"
	"github.com/jonathan/draft-refinery/internal/feedback"
	"github.com/jonathan/draft-refinery/internal/scoring"
	"github.com/jonathan/draft-refinery/internal/types"
)

// Regenerator is the external draft-regeneration capability, injected so
// the controller's state-machine logic can be exercised with a
// deterministic test double. Implementations must be idempotent-safe to
// retry.
type Regenerator interface {
	Regenerate(ctx context.Context, currentDraft string, brief *feedback.RevisionBrief, evalCtx *types.EvaluationContext) (string, error)
}

// HistoryLookup resolves a candidate's verified work history from the
// system of record. Read-only.
type HistoryLookup interface {
	GetWorkHistory(ctx context.Context, userID string) ([]types.WorkHistoryRecord, error)
}

// Options configures one refinement run. The zero value is usable via
// DefaultOptions.
type Options struct {
	MaxIterations    int     // iteration budget, default 3
	QualityThreshold float64 // acceptance threshold on the 0-100 score, default 80
	StrictMode       bool    // promotes warning-level issues to blocking
}

// DefaultOptions returns the default refinement configuration.
func DefaultOptions() Options {
	return Options{
		MaxIterations:    3,
		QualityThreshold: 80,
		StrictMode:       false,
	}
}

// Engine runs evaluations and the bounded refinement loop. Engines hold no
// per-request state; each call runs its own independent sequence of rounds.
type Engine struct {
	regenerator Regenerator
	history     HistoryLookup
	opts        Options
}

// NewEngine creates an engine. regenerator may be nil for evaluate-only
// use; history may be nil when callers supply work history in the context.
func NewEngine(regenerator Regenerator, history HistoryLookup, opts Options) *Engine {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions().MaxIterations
	}
	if opts.QualityThreshold <= 0 {
		opts.QualityThreshold = DefaultOptions().QualityThreshold
	}
	return &Engine{regenerator: regenerator, history: history, opts: opts}
}

// Evaluate runs a single-shot evaluation without looping. The returned
// round is round 1 with ShouldRetry reflecting whether a revision would be
// requested under the engine's options.
func (e *Engine) Evaluate(ctx context.Context, draft *types.Draft, evalCtx *types.EvaluationContext) (*types.EvaluationRound, error) {
	resolved, err := e.resolveHistory(ctx, evalCtx)
	if err != nil {
		return nil, err
	}

	round := e.evaluateRound(ctx, 1, draft, resolved, nil, nil)
	round.ShouldRetry = !round.Passed && e.opts.MaxIterations > 1
	return round, nil
}

// Refine runs the full generation-evaluation-revision loop: evaluate the
// initial draft, and while it does not pass, translate the issues into a
// revision brief, regenerate, and re-evaluate, up to the iteration budget.
// The last round is returned regardless of pass/fail with ShouldRetry
// forced to false. Regeneration failures terminate the loop with the
// current result rather than an error.
func (e *Engine) Refine(ctx context.Context, draft *types.Draft, evalCtx *types.EvaluationContext) (*types.RefinementResult, error) {
	resolved, err := e.resolveHistory(ctx, evalCtx)
	if err != nil {
		return nil, err
	}

	result := &types.RefinementResult{RequestID: uuid.New()}
	current := *draft

	var previousScore *types.QualityScore
	var carried []types.CheckResult // failed preservation result carried into the next evaluation

	// DRAFTED -> EVALUATED -> {ACCEPTED | REVISING} -> DRAFTED(next round),
	// terminating on acceptance, budget exhaustion, or upstream failure.
	for iteration := 1; iteration <= e.opts.MaxIterations; iteration++ {
		// DRAFTED -> EVALUATED
		round := e.evaluateRound(ctx, iteration, &current, resolved, previousScore, carried)
		carried = nil

		budgetLeft := iteration < e.opts.MaxIterations
		round.ShouldRetry = !round.Passed && budgetLeft
		result.Rounds = append(result.Rounds, *round)
		previousScore = &round.Quality

		// EVALUATED -> ACCEPTED
		if round.Passed {
			break
		}
		// Budget exhausted: TERMINATED with the last round as final.
		if !budgetLeft {
			break
		}

		// EVALUATED -> REVISING
		brief := feedback.Build(round)

		newText, err := e.regenerate(ctx, current.Text, brief, resolved)
		if err != nil {
			// Unable to improve further: the current round stands as final.
			result.RegenerationFailed = true
			break
		}

		// A rewrite that drops metrics or proper nouns is discarded and the
		// original text retained; the failed preservation result is carried
		// into the next round so the following brief flags it.
		guarded, preserved := checks.GuardRewrite(current.Text, newText)
		if !preserved {
			carried = []types.CheckResult{checks.CheckMetricPreservation(current.Text, newText)}
		}

		// REVISING -> DRAFTED(next round)
		current.Text = guarded
	}

	last := &result.Rounds[len(result.Rounds)-1]
	last.ShouldRetry = false
	result.FinalDraft = current.Text
	result.Accepted = last.Passed
	return result, nil
}

// evaluateRound runs all applicable checkers and aggregates the quality
// score for one round. extra results (e.g. a failed preservation check from
// a discarded rewrite) are appended before aggregation.
func (e *Engine) evaluateRound(ctx context.Context, iteration int, draft *types.Draft, evalCtx *types.EvaluationContext, previous *types.QualityScore, extra []types.CheckResult) *types.EvaluationRound {
	results := checks.RunAll(ctx, draft, evalCtx, e.opts.StrictMode)
	results = append(results, extra...)

	quality := scoring.Aggregate(results, previous)

	round := &types.EvaluationRound{
		ID:           uuid.New(),
		Round:        iteration,
		DraftText:    draft.Text,
		CheckResults: results,
		Quality:      quality,
		EvaluatedAt:  time.Now().UTC(),
	}
	round.Passed = quality.Score >= e.opts.QualityThreshold && !round.HasCriticalIssue()
	return round
}

// regenerate invokes the external regeneration service.
func (e *Engine) regenerate(ctx context.Context, currentDraft string, brief *feedback.RevisionBrief, evalCtx *types.EvaluationContext) (string, error) {
	if e.regenerator == nil {
		return "", &UpstreamError{Service: "regeneration", Message: "no regenerator configured"}
	}
	text, err := e.regenerator.Regenerate(ctx, currentDraft, brief, evalCtx)
	if err != nil {
		return "", &UpstreamError{Service: "regeneration", Message: "regenerate call failed", Cause: err}
	}
	return text, nil
}

// resolveHistory fetches work history from the system of record when the
// context names a user but carries no records. Returns a copy of the
// context so callers' contexts are never mutated.
func (e *Engine) resolveHistory(ctx context.Context, evalCtx *types.EvaluationContext) (*types.EvaluationContext, error) {
	resolved := *evalCtx
	if len(resolved.WorkHistory) > 0 || resolved.UserID == "" || e.history == nil {
		return &resolved, nil
	}

	records, err := e.history.GetWorkHistory(ctx, resolved.UserID)
	if err != nil {
		return nil, &UpstreamError{Service: "work-history", Message: "lookup failed", Cause: err}
	}
	resolved.WorkHistory = records
	return &resolved, nil
}
