// Package checks composes text signal extractors into named rule checkers.
package checks

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/draft-refinery/internal/types"
)

// RunAll executes every applicable rule checker for one evaluation round.
// Checkers are stateless and independent, so they run concurrently; results
// are collected into fixed slots so the returned order (and therefore the
// aggregate score and issue list) is identical across runs.
func RunAll(ctx context.Context, draft *types.Draft, evalCtx *types.EvaluationContext, strict bool) []types.CheckResult {
	results := make([]types.CheckResult, 5)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		results[0] = CheckBannedPhrases(draft, strict)
		return nil
	})
	g.Go(func() error {
		results[1] = CheckToneCompatibility(draft, evalCtx.TargetTone)
		return nil
	})
	g.Go(func() error {
		results[2] = CheckATSCoverage(draft, evalCtx.Keywords, strict)
		return nil
	})
	g.Go(func() error {
		results[3] = CheckDocumentStructure(draft, evalCtx, strict)
		return nil
	})
	g.Go(func() error {
		results[4] = CheckRequirementCoverage(draft, evalCtx.TopRequirements)
		return nil
	})

	// Checkers never return errors; problems surface as issues.
	_ = g.Wait()

	// Truthfulness needs the work-history records resolved by the caller
	// and only applies to resumes. Runs last so its critical issues land
	// after the text checks in a predictable position.
	if draft.Kind == types.DocumentResume {
		results = append(results, CheckHistoryTruthfulness(draft, evalCtx.WorkHistory))
	}

	return results
}
