package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/config"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/extract"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/fetch"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/observability"
)

var (
	generateResumePath string
	generateJobPath    string
	generateJobURL     string
	generateOutDir     string
	generateVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a full application kit from files",
	Long:  `Generate summary, optimized resume, cover letter and mock interview from a resume text file and an optional job description (file or URL), writing the results as Markdown files.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateResumePath, "resume", "", "Path to resume text file (required)")
	generateCmd.Flags().StringVar(&generateJobPath, "job", "", "Path to job description text file")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL of the job posting")
	generateCmd.Flags().StringVar(&generateOutDir, "out", "out", "Output directory")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Print extracted signals and document previews")
	_ = generateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resumeBytes, err := os.ReadFile(generateResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText := string(resumeBytes)

	jobDescription, err := loadJobDescription(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pipe, cleanup := buildPipeline(ctx, cfg)
	defer cleanup()

	kit := pipe.ApplicationKit(ctx, resumeText, jobDescription)

	if generateVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintSignals(extract.Signals(resumeText, jobDescription))
		printer.PrintDocument("Optimized Resume", kit.OptimizedResume)
		printer.PrintInterview(kit.QA)
	}

	if err := os.MkdirAll(generateOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	qaJSON, err := json.MarshalIndent(kit.QA, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode interview: %w", err)
	}

	outputs := map[string][]byte{
		"summary.md":      []byte(kit.Summary),
		"resume.md":       []byte(kit.OptimizedResume),
		"cover_letter.md": []byte(kit.CoverLetterMarkdown),
		"interview.json":  qaJSON,
	}
	for name, content := range outputs {
		path := filepath.Join(generateOutDir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Application kit written to %s (model: %s)\n", generateOutDir, kit.Model)
	return nil
}

func loadJobDescription(cmd *cobra.Command) (string, error) {
	switch {
	case generateJobPath != "":
		jobBytes, err := os.ReadFile(generateJobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(jobBytes), nil
	case generateJobURL != "":
		text, err := fetch.JobText(cmd.Context(), generateJobURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, nil
	default:
		return "", nil
	}
}
