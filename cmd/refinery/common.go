// Package main implements the refinery CLI for draft evaluation and refinement.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/draft-refinery/internal/config"
	"github.com/jonathan/draft-refinery/internal/history"
	"github.com/jonathan/draft-refinery/internal/jobcontext"
	"github.com/jonathan/draft-refinery/internal/refine"
	"github.com/jonathan/draft-refinery/internal/types"
)

// loadMergedConfig loads the optional config file and overlays CLI flag
// values on top of it. Flag values always win.
func loadMergedConfig(configPath string, flags config.Config) (*config.Config, error) {
	base := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		base = loaded
	}

	merged := flags.MergeWithDefaults(*base)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// loadDraft reads the draft file. JSON files carry structured drafts with
// bullets and experience claims; any other extension is treated as plain
// text of the configured kind.
func loadDraft(path, kind string) (*types.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	if filepath.Ext(path) == ".json" {
		var draft types.Draft
		if err := json.Unmarshal(data, &draft); err != nil {
			return nil, fmt.Errorf("failed to parse draft JSON: %w", err)
		}
		if draft.Text == "" {
			return nil, fmt.Errorf("draft JSON has no text")
		}
		return &draft, nil
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("draft file is empty")
	}

	documentKind := types.DocumentResume
	if kind == string(types.DocumentCoverLetter) {
		documentKind = types.DocumentCoverLetter
	}
	return &types.Draft{Kind: documentKind, Text: text}, nil
}

// buildEvalContext assembles the evaluation context from the job posting
// (file or URL) and the structural settings in the config.
func buildEvalContext(ctx context.Context, cfg *config.Config) (*types.EvaluationContext, error) {
	evalCtx := &types.EvaluationContext{
		UserID:     cfg.UserID,
		TargetTone: cfg.Tone,
		MinWords:   cfg.MinWords,
		MaxWords:   cfg.MaxWords,
		MaxLines:   cfg.MaxLines,
	}

	var posting *jobcontext.Posting
	switch {
	case cfg.Job != "":
		html, err := os.ReadFile(cfg.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to read job posting file: %w", err)
		}
		posting, err = jobcontext.ExtractPosting(string(html), cfg.Job)
		if err != nil {
			return nil, err
		}
	case cfg.JobURL != "":
		provider := jobcontext.NewCachedProvider(jobcontext.NewHTTPSource(), nil)
		cached, err := provider.Get(ctx, cfg.JobURL)
		if err != nil {
			return nil, err
		}
		posting = cached.Posting
	}

	if posting != nil {
		evalCtx.Keywords = posting.Keywords
	}
	return evalCtx, nil
}

// buildHistoryLookup picks the work-history source: Postgres when a
// database URL is configured, a file-backed memory store when a history
// file is given, and nil otherwise.
func buildHistoryLookup(ctx context.Context, cfg *config.Config) (refine.HistoryLookup, func(), error) {
	if cfg.DatabaseURL != "" {
		store, err := history.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	if cfg.History != "" {
		data, err := os.ReadFile(cfg.History)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read history file: %w", err)
		}
		var records []types.WorkHistoryRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, nil, fmt.Errorf("failed to parse history JSON: %w", err)
		}
		store := history.NewMemoryStore()
		store.Put(cfg.UserID, records)
		return store, func() {}, nil
	}

	return nil, func() {}, nil
}

// writeJSONOutput marshals v and writes it to the output path, or stdout
// when no path is given.
func writeJSONOutput(v any, outputPath string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if outputPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// engineOptions translates config values into refinement options, keeping
// defaults for unset fields.
func engineOptions(cfg *config.Config) refine.Options {
	opts := refine.DefaultOptions()
	if cfg.MaxIterations > 0 {
		opts.MaxIterations = cfg.MaxIterations
	}
	if cfg.QualityThreshold > 0 {
		opts.QualityThreshold = cfg.QualityThreshold
	}
	opts.StrictMode = cfg.Strict
	return opts
}
