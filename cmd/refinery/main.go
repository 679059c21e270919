// Package main provides the entry point for the draft refinery CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "refinery",
	Short: "Draft quality evaluation and refinement",
	Long:  "Refinery evaluates resume and cover letter drafts against job-posting context, scores them, and iteratively revises failing drafts until they pass or the iteration budget runs out.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
