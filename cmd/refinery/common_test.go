package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/draft-refinery/internal/config"
	"github.com/jonathan/draft-refinery/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDraft_PlainText(t *testing.T) {
	path := writeFile(t, "draft.txt", "Shipped features on time.\n")

	draft, err := loadDraft(path, "cover_letter")
	require.NoError(t, err)

	assert.Equal(t, types.DocumentCoverLetter, draft.Kind)
	assert.Equal(t, "Shipped features on time.", draft.Text)
}

func TestLoadDraft_PlainTextDefaultsToResume(t *testing.T) {
	path := writeFile(t, "draft.txt", "Shipped features on time.")

	draft, err := loadDraft(path, "")
	require.NoError(t, err)
	assert.Equal(t, types.DocumentResume, draft.Kind)
}

func TestLoadDraft_JSON(t *testing.T) {
	path := writeFile(t, "draft.json", `{
		"kind": "resume",
		"text": "Senior Engineer at Acme Corp.",
		"experience_claims": [
			{"experience_id": 101, "employer": "Acme Corp", "title": "Senior Engineer",
			 "start_date": "2019-03", "end_date": "2022-08"}
		]
	}`)

	draft, err := loadDraft(path, "")
	require.NoError(t, err)

	assert.Equal(t, types.DocumentResume, draft.Kind)
	require.Len(t, draft.ExperienceClaims, 1)
	assert.Equal(t, int64(101), draft.ExperienceClaims[0].ExperienceID)
}

func TestLoadDraft_EmptyFile(t *testing.T) {
	path := writeFile(t, "draft.txt", "   \n")
	_, err := loadDraft(path, "")
	assert.Error(t, err)
}

func TestLoadDraft_JSONWithoutText(t *testing.T) {
	path := writeFile(t, "draft.json", `{"kind": "resume"}`)
	_, err := loadDraft(path, "")
	assert.Error(t, err)
}

func TestLoadMergedConfig_FlagsWin(t *testing.T) {
	configPath := writeFile(t, "config.json", `{"tone": "formal", "max_iterations": 5}`)

	cfg, err := loadMergedConfig(configPath, config.Config{Tone: "direct"})
	require.NoError(t, err)

	assert.Equal(t, "direct", cfg.Tone)
	assert.Equal(t, 5, cfg.MaxIterations)
}

func TestLoadMergedConfig_InvalidMergedConfig(t *testing.T) {
	configPath := writeFile(t, "config.json", `{"tone": "sarcastic"}`)

	_, err := loadMergedConfig(configPath, config.Config{})
	assert.Error(t, err)
}

func TestEngineOptions_Defaults(t *testing.T) {
	opts := engineOptions(&config.Config{})
	assert.Equal(t, 3, opts.MaxIterations)
	assert.Equal(t, 80.0, opts.QualityThreshold)
	assert.False(t, opts.StrictMode)
}

func TestEngineOptions_Overrides(t *testing.T) {
	opts := engineOptions(&config.Config{MaxIterations: 1, QualityThreshold: 90, Strict: true})
	assert.Equal(t, 1, opts.MaxIterations)
	assert.Equal(t, 90.0, opts.QualityThreshold)
	assert.True(t, opts.StrictMode)
}

func TestBuildHistoryLookup_FromFile(t *testing.T) {
	records := []types.WorkHistoryRecord{
		{ExperienceID: 101, Employer: "Acme Corp", Title: "Senior Engineer",
			StartDate: "2019-03", EndDate: "2022-08"},
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	path := writeFile(t, "history.json", string(data))

	lookup, closeLookup, err := buildHistoryLookup(context.Background(),
		&config.Config{History: path, UserID: "user-1"})
	require.NoError(t, err)
	defer closeLookup()
	require.NotNil(t, lookup)

	got, err := lookup.GetWorkHistory(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].Employer)
}

func TestBuildHistoryLookup_NoSourceConfigured(t *testing.T) {
	lookup, closeLookup, err := buildHistoryLookup(context.Background(), &config.Config{})
	require.NoError(t, err)
	defer closeLookup()
	assert.Nil(t, lookup)
}

func TestBuildEvalContext_FromJobFile(t *testing.T) {
	jobPath := writeFile(t, "job.html",
		`<html><body><div class="job-description">Required: Go and PostgreSQL.</div></body></html>`)

	evalCtx, err := buildEvalContext(context.Background(),
		&config.Config{Job: jobPath, Tone: "professional", MaxWords: 400})
	require.NoError(t, err)

	assert.Equal(t, "professional", evalCtx.TargetTone)
	assert.Equal(t, 400, evalCtx.MaxWords)
	require.NotEmpty(t, evalCtx.Keywords)
	assert.Equal(t, "go", evalCtx.Keywords[0].Term)
	assert.True(t, evalCtx.Keywords[0].MustHave)
}

func TestWriteJSONOutput_ToFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out", "result.json")

	err := writeJSONOutput(map[string]int{"score": 85}, outputPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score": 85`)
}
