package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/draft-refinery/internal/feedback"
	"github.com/jonathan/draft-refinery/internal/schemas"
	"github.com/jonathan/draft-refinery/internal/types"
)

// regenerationResponse mirrors the JSON contract the model is asked to
// return. Validated against the embedded schema before unmarshaling.
type regenerationResponse struct {
	DraftText     string   `json:"draft_text"`
	RevisionNotes []string `json:"revision_notes,omitempty"`
}

// Regenerator produces revised drafts from revision briefs via an LLM
// client. Revision is a constrained rewrite, so it always runs on the
// advanced tier.
type Regenerator struct {
	client Client
	tier   ModelTier
}

// NewRegenerator wraps an LLM client as a draft regenerator.
func NewRegenerator(client Client) *Regenerator {
	return &Regenerator{client: client, tier: TierAdvanced}
}

// Regenerate asks the model for a revised draft that applies the brief's
// priority fixes while keeping every preserve token verbatim. The response
// is schema-validated before the draft text is extracted.
func (r *Regenerator) Regenerate(ctx context.Context, currentDraft string, brief *feedback.RevisionBrief, evalCtx *types.EvaluationContext) (string, error) {
	prompt := buildRevisionPrompt(currentDraft, brief, evalCtx)

	raw, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return "", fmt.Errorf("regeneration request failed: %w", err)
	}

	if err := schemas.ValidateRegenerationResponse(raw); err != nil {
		return "", fmt.Errorf("regeneration response rejected: %w", err)
	}

	var resp regenerationResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return "", fmt.Errorf("regeneration response unmarshal failed: %w", err)
	}

	return strings.TrimSpace(resp.DraftText), nil
}

// buildRevisionPrompt frames the revision task around the formatted brief.
// The brief itself quotes the current draft with explicit delimiters.
func buildRevisionPrompt(currentDraft string, brief *feedback.RevisionBrief, evalCtx *types.EvaluationContext) string {
	var sb strings.Builder

	sb.WriteString("You are revising a career document. Apply the fixes below without inventing ")
	sb.WriteString("new employers, titles, dates, or metrics.\n\n")

	if evalCtx != nil && evalCtx.TargetTone != "" {
		sb.WriteString("Target tone: " + evalCtx.TargetTone + "\n\n")
	}

	sb.WriteString(brief.Format(currentDraft))

	sb.WriteString("\nReturn ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"draft_text\": string (required) // the full revised draft\n")
	sb.WriteString("  \"revision_notes\": []string // optional, what changed\n")
	sb.WriteString("}\n")
	sb.WriteString("No markdown, no explanation, no code blocks.\n")

	return sb.String()
}
