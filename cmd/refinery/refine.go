package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/draft-refinery/internal/config"
	"github.com/jonathan/draft-refinery/internal/llm"
	"github.com/jonathan/draft-refinery/internal/refine"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Evaluate a draft and revise it until it passes",
	Long:  "Runs the full evaluation-revision loop: failing drafts are translated into revision briefs and regenerated via the configured LLM, up to the iteration budget.",
	RunE:  runRefine,
}

var (
	refineConfig        string
	refineDraft         string
	refineKind          string
	refineJob           string
	refineJobURL        string
	refineHistory       string
	refineUser          string
	refineTone          string
	refineStrict        bool
	refineMaxIterations int
	refineThreshold     float64
	refineOutput        string
)

func init() {
	refineCmd.Flags().StringVar(&refineConfig, "config", "", "Path to JSON config file")
	refineCmd.Flags().StringVarP(&refineDraft, "draft", "d", "", "Path to draft text or JSON file (required)")
	refineCmd.Flags().StringVar(&refineKind, "kind", "resume", "Document kind: resume or cover_letter")
	refineCmd.Flags().StringVar(&refineJob, "job", "", "Path to job posting HTML/text file")
	refineCmd.Flags().StringVar(&refineJobURL, "job-url", "", "URL to fetch the job posting from")
	refineCmd.Flags().StringVar(&refineHistory, "history", "", "Path to work-history JSON file")
	refineCmd.Flags().StringVar(&refineUser, "user", "", "User ID for work-history lookups")
	refineCmd.Flags().StringVar(&refineTone, "tone", "", "Target tone")
	refineCmd.Flags().BoolVar(&refineStrict, "strict", false, "Promote warning-level issues to blocking")
	refineCmd.Flags().IntVar(&refineMaxIterations, "max-iterations", 0, "Iteration budget (default 3)")
	refineCmd.Flags().Float64Var(&refineThreshold, "threshold", 0, "Quality score acceptance threshold (default 80)")
	refineCmd.Flags().StringVarP(&refineOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Step 1: Merge config file and flags
	cfg, err := loadMergedConfig(refineConfig, config.Config{
		Draft:            refineDraft,
		Kind:             refineKind,
		Job:              refineJob,
		JobURL:           refineJobURL,
		History:          refineHistory,
		UserID:           refineUser,
		Tone:             refineTone,
		Strict:           refineStrict,
		MaxIterations:    refineMaxIterations,
		QualityThreshold: refineThreshold,
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

	// Step 5: Create the LLM-backed regenerator
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set --config api_key or GEMINI_API_KEY")
	}

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// Step 6: Run the refinement loop
	engine := refine.NewEngine(llm.NewRegenerator(client), lookup, engineOptions(cfg))
	result, err := engine.Refine(ctx, draft, evalCtx)
	if err != nil {
		return err
	}

	// Step 7: Write the refinement report
	if err := writeJSONOutput(result, refineOutput); err != nil {
		return err
	}

	if !result.Accepted {
		final := result.Rounds[len(result.Rounds)-1]
		return fmt.Errorf("draft not accepted after %d round(s), final score %.0f", len(result.Rounds), final.Quality.Score)
	}
	return nil
}
