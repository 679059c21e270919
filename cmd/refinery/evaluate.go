package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/draft-refinery/internal/config"
	"github.com/jonathan/draft-refinery/internal/refine"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a draft without revising it",
	Long:  "Runs all rule checkers against a draft, aggregates the quality score, and reports the issues found. No regeneration is attempted.",
	RunE:  runEvaluate,
}

var (
	evaluateConfig  string
	evaluateDraft   string
	evaluateKind    string
	evaluateJob     string
	evaluateJobURL  string
	evaluateHistory string
	evaluateUser    string
	evaluateTone    string
	evaluateStrict  bool
	evaluateOutput  string
)

func init() {
	evaluateCmd.Flags().StringVar(&evaluateConfig, "config", "", "Path to JSON config file")
	evaluateCmd.Flags().StringVarP(&evaluateDraft, "draft", "d", "", "Path to draft text or JSON file (required)")
	evaluateCmd.Flags().StringVar(&evaluateKind, "kind", "resume", "Document kind: resume or cover_letter")
	evaluateCmd.Flags().StringVar(&evaluateJob, "job", "", "Path to job posting HTML/text file")
	evaluateCmd.Flags().StringVar(&evaluateJobURL, "job-url", "", "URL to fetch the job posting from")
	evaluateCmd.Flags().StringVar(&evaluateHistory, "history", "", "Path to work-history JSON file")
	evaluateCmd.Flags().StringVar(&evaluateUser, "user", "", "User ID for work-history lookups")
	evaluateCmd.Flags().StringVar(&evaluateTone, "tone", "", "Target tone")
	evaluateCmd.Flags().BoolVar(&evaluateStrict, "strict", false, "Promote warning-level issues to blocking")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Step 1: Merge config file and flags
	cfg, err := loadMergedConfig(evaluateConfig, config.Config{
		Draft:   evaluateDraft,
		Kind:    evaluateKind,
		Job:     evaluateJob,
		JobURL:  evaluateJobURL,
		History: evaluateHistory,
		UserID:  evaluateUser,
		Tone:    evaluateTone,
		Strict:  evaluateStrict,
	})
	if err != nil {
		return err
	}
	if cfg.Draft == "" {
		return fmt.Errorf("no draft: set --draft or 'draft' in the config file")
	}

	// Step 2: Load the draft
	draft, err := loadDraft(cfg.Draft, cfg.Kind)
	if err != nil {
		return err
	}

	// Step 3: Build evaluation context from the job posting
	evalCtx, err := buildEvalContext(ctx, cfg)
	if err != nil {
		return err
	}

	// Step 4: Wire the work-history source
	lookup, closeLookup, err := buildHistoryLookup(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLookup()

	// Step 5: Evaluate
	engine := refine.NewEngine(nil, lookup, engineOptions(cfg))
	round, err := engine.Evaluate(ctx, draft, evalCtx)
	if err != nil {
		return err
	}

	// Step 6: Write the round report
	if err := writeJSONOutput(round, evaluateOutput); err != nil {
		return err
	}

	if !round.Passed {
		return fmt.Errorf("draft failed evaluation with score %.0f", round.Quality.Score)
	}
	return nil
}
