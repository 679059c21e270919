package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/draft-refinery/internal/feedback"
	"github.com/jonathan/draft-refinery/internal/types"
)

// fakeClient returns canned responses and records prompts.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error              { return nil }

func testBrief() *feedback.RevisionBrief {
	return &feedback.RevisionBrief{
		PriorityFixes: []string{`contains banned phrase "team player" (remove it)`},
		Preserve:      []string{"3x", "Acme Corp"},
	}
}

func TestRegenerator_ReturnsDraftText(t *testing.T) {
	client := &fakeClient{response: `{"draft_text": "Revised draft keeping 3x at Acme Corp."}`}
	regen := NewRegenerator(client)

	text, err := regen.Regenerate(context.Background(), "old draft", testBrief(), nil)

	require.NoError(t, err)
	assert.Equal(t, "Revised draft keeping 3x at Acme Corp.", text)
}

func TestRegenerator_PromptCarriesBriefAndTone(t *testing.T) {
	client := &fakeClient{response: `{"draft_text": "ok"}`}
	regen := NewRegenerator(client)

	evalCtx := &types.EvaluationContext{TargetTone: "professional"}
	_, err := regen.Regenerate(context.Background(), "old draft", testBrief(), evalCtx)

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Target tone: professional")
	assert.Contains(t, prompt, `contains banned phrase "team player"`)
	assert.Contains(t, prompt, "Preserve verbatim")
	assert.Contains(t, prompt, "old draft")
}

func TestRegenerator_RejectsInvalidResponse(t *testing.T) {
	client := &fakeClient{response: `{"revision_notes": ["forgot the draft"]}`}
	regen := NewRegenerator(client)

	_, err := regen.Regenerate(context.Background(), "old draft", testBrief(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "regeneration response rejected")
}

func TestRegenerator_PropagatesClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exhausted")}
	regen := NewRegenerator(client)

	_, err := regen.Regenerate(context.Background(), "old draft", testBrief(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestRegenerator_TrimsWhitespace(t *testing.T) {
	client := &fakeClient{response: `{"draft_text": "  padded draft  \n"}`}
	regen := NewRegenerator(client)

	text, err := regen.Regenerate(context.Background(), "old", testBrief(), nil)
	require.NoError(t, err)
	assert.Equal(t, "padded draft", text)
}
