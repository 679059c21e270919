package refine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/draft-refinery/internal/checks"
	"github.com/jonathan/draft-refinery/internal/feedback"
	"github.com/jonathan/draft-refinery/internal/types"
)

// fakeRegenerator returns canned drafts in sequence, recording every call.
type fakeRegenerator struct {
	outputs []string
	err     error
	calls   int
	briefs  []*feedback.RevisionBrief
}

func (f *fakeRegenerator) Regenerate(_ context.Context, _ string, brief *feedback.RevisionBrief, _ *types.EvaluationContext) (string, error) {
	f.calls++
	f.briefs = append(f.briefs, brief)
	if f.err != nil {
		return "", f.err
	}
	idx := f.calls - 1
	if idx >= len(f.outputs) {
		idx = len(f.outputs) - 1
	}
	return f.outputs[idx], nil
}

// fakeHistory is a deterministic system-of-record double.
type fakeHistory struct {
	records []types.WorkHistoryRecord
	err     error
	calls   int
}

func (f *fakeHistory) GetWorkHistory(_ context.Context, _ string) ([]types.WorkHistoryRecord, error) {
	f.calls++
	return f.records, f.err
}

const cleanText = "Delivered a resilient payments platform that processed high volume traffic for enterprise customers across several regions."

const dirtyText = "Delivered a resilient payments platform that processed high volume traffic for enterprise customers. I am excited to apply for this role here."

func plainContext() *types.EvaluationContext {
	return &types.EvaluationContext{TargetTone: checks.ToneProfessional}
}

func coverLetterDraft(text string) *types.Draft {
	return &types.Draft{Kind: types.DocumentCoverLetter, Text: text}
}

func TestEvaluate_Deterministic(t *testing.T) {
	engine := NewEngine(nil, nil, DefaultOptions())

	first, err := engine.Evaluate(context.Background(), coverLetterDraft(dirtyText), plainContext())
	require.NoError(t, err)
	second, err := engine.Evaluate(context.Background(), coverLetterDraft(dirtyText), plainContext())
	require.NoError(t, err)

	assert.Equal(t, first.Quality.Score, second.Quality.Score)
	assert.Equal(t, first.AllIssues(), second.AllIssues())
}

func TestEvaluate_CleanDraftPasses(t *testing.T) {
	engine := NewEngine(nil, nil, DefaultOptions())

	round, err := engine.Evaluate(context.Background(), coverLetterDraft(cleanText), plainContext())
	require.NoError(t, err)

	assert.Equal(t, 100.0, round.Quality.Score)
	assert.True(t, round.Passed)
	assert.False(t, round.ShouldRetry)
}

func TestRefine_AcceptsOnFirstRound(t *testing.T) {
	regen := &fakeRegenerator{outputs: []string{cleanText}}
	engine := NewEngine(regen, nil, DefaultOptions())

	result, err := engine.Refine(context.Background(), coverLetterDraft(cleanText), plainContext())
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Len(t, result.Rounds, 1)
	assert.Equal(t, 0, regen.calls)
	assert.Equal(t, cleanText, result.FinalDraft)
}

func TestRefine_ImprovesAcrossRounds(t *testing.T) {
	regen := &fakeRegenerator{outputs: []string{cleanText}}
	engine := NewEngine(regen, nil, DefaultOptions())

	result, err := engine.Refine(context.Background(), coverLetterDraft(dirtyText), plainContext())
	require.NoError(t, err)

	require.Len(t, result.Rounds, 2)
	assert.False(t, result.Rounds[0].Passed)
	assert.True(t, result.Rounds[0].ShouldRetry)
	assert.True(t, result.Rounds[1].Passed)
	assert.True(t, result.Accepted)
	assert.Equal(t, cleanText, result.FinalDraft)
	assert.Equal(t, 1, regen.calls)

	// Delta is recorded on rounds after the first
	assert.Nil(t, result.Rounds[0].Quality.Delta)
	require.NotNil(t, result.Rounds[1].Quality.Delta)
	assert.Greater(t, *result.Rounds[1].Quality.Delta, 0.0)
}

func TestRefine_BriefCarriesIssueText(t *testing.T) {
	regen := &fakeRegenerator{outputs: []string{cleanText}}
	engine := NewEngine(regen, nil, DefaultOptions())

	_, err := engine.Refine(context.Background(), coverLetterDraft(dirtyText), plainContext())
	require.NoError(t, err)

	require.Len(t, regen.briefs, 1)
	joined := ""
	for _, fix := range regen.briefs[0].PriorityFixes {
		joined += fix + "\n"
	}
	assert.Contains(t, joined, "i am excited to apply")
}

func TestRefine_SingleIterationBudget(t *testing.T) {
	// max_iterations=1, quality_threshold=99: exactly one round runs
	// regardless of score, with should_retry=false on the returned round.
	regen := &fakeRegenerator{outputs: []string{cleanText}}
	engine := NewEngine(regen, nil, Options{MaxIterations: 1, QualityThreshold: 99})

	result, err := engine.Refine(context.Background(), coverLetterDraft(dirtyText), plainContext())
	require.NoError(t, err)

	assert.Len(t, result.Rounds, 1)
	assert.False(t, result.Rounds[0].ShouldRetry)
	assert.Equal(t, 0, regen.calls)
}

func TestRefine_BoundedWhenQualityNeverImproves(t *testing.T) {
	// Regenerator echoes the same bad draft forever; the loop must
	// terminate at the budget.
	regen := &fakeRegenerator{outputs: []string{dirtyText}}
	engine := NewEngine(regen, nil, Options{MaxIterations: 4, QualityThreshold: 95})

	result, err := engine.Refine(context.Background(), coverLetterDraft(dirtyText), plainContext())
	require.NoError(t, err)

	assert.Len(t, result.Rounds, 4)
	assert.False(t, result.Accepted)
	assert.False(t, result.Rounds[3].ShouldRetry)
}

func TestRefine_RegenerationFailureIsTerminalNotFatal(t *testing.T) {
	regen := &fakeRegenerator{err: errors.New("service unavailable")}
	engine := NewEngine(regen, nil, DefaultOptions())

	result, err := engine.Refine(context.Background(), coverLetterDraft(dirtyText), plainContext())
	require.NoError(t, err)

	assert.True(t, result.RegenerationFailed)
	assert.False(t, result.Accepted)
	assert.Len(t, result.Rounds, 1)
	assert.Equal(t, dirtyText, result.FinalDraft)
}

func TestRefine_DiscardsNonPreservingRewrite(t *testing.T) {
	original := "Delivered 3x throughput gains at Acme Corp while remaining passionate about platform reliability over many years."
	// The rewrite drops both the metric and the company name.
	rewrite := "Delivered improved throughput at the company while keeping everything running smoothly for a long time."

	regen := &fakeRegenerator{outputs: []string{rewrite}}
	engine := NewEngine(regen, nil, Options{MaxIterations: 2, QualityThreshold: 99})

	result, err := engine.Refine(context.Background(), coverLetterDraft(original), plainContext())
	require.NoError(t, err)

	// Original text is retained, never silently replaced
	assert.Equal(t, original, result.FinalDraft)
	require.Len(t, result.Rounds, 2)

	// The discarded rewrite surfaces as a failed preservation result on the
	// following round
	var found *types.CheckResult
	for i := range result.Rounds[1].CheckResults {
		if result.Rounds[1].CheckResults[i].Name == checks.CheckPreservation {
			found = &result.Rounds[1].CheckResults[i]
		}
	}
	require.NotNil(t, found)
	assert.False(t, found.Passed)
}

func TestRefine_ResolvesWorkHistoryOnce(t *testing.T) {
	history := &fakeHistory{records: []types.WorkHistoryRecord{{
		ExperienceID: 7, Employer: "Acme Corp", Title: "Engineer",
		StartDate: "2019-03", EndDate: "2022-08",
	}}}
	regen := &fakeRegenerator{outputs: []string{cleanText}}
	engine := NewEngine(regen, history, Options{MaxIterations: 3, QualityThreshold: 80})

	draft := &types.Draft{
		Kind: types.DocumentResume,
		Text: dirtyText,
		ExperienceClaims: []types.ExperienceClaim{{
			ExperienceID: 7, Employer: "Acme Corp", Title: "Engineer",
			StartDate: "2019-03", EndDate: "2022-08",
		}},
	}
	evalCtx := plainContext()
	evalCtx.UserID = "user-1"

	_, err := engine.Refine(context.Background(), draft, evalCtx)
	require.NoError(t, err)
	assert.Equal(t, 1, history.calls)
}

func TestRefine_HistoryLookupFailure(t *testing.T) {
	history := &fakeHistory{err: errors.New("connection refused")}
	engine := NewEngine(nil, history, DefaultOptions())

	evalCtx := plainContext()
	evalCtx.UserID = "user-1"

	_, err := engine.Refine(context.Background(), coverLetterDraft(cleanText), evalCtx)
	require.Error(t, err)

	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.Equal(t, "work-history", upstream.Service)
}

func TestNewEngine_DefaultsZeroOptions(t *testing.T) {
	engine := NewEngine(nil, nil, Options{})
	assert.Equal(t, 3, engine.opts.MaxIterations)
	assert.Equal(t, 80.0, engine.opts.QualityThreshold)
}
