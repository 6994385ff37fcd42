// Package main provides the entry point for the AI job application
// assistant: an HTTP API and CLI that turn resumes and job descriptions
// into derived documents (summary, optimized resume, cover letter, mock
// interview).
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ai_job_assistant",
	Short: "AI Job Application Assistant",
	Long:  "AI Job Application Assistant generates summaries, optimized resumes, cover letters and mock interviews from free-text resumes, with deterministic fallbacks when no model is available.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
