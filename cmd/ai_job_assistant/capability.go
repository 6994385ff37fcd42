package main

import (
	"context"
	"log"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/config"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/llm"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/pipeline"
)

// buildPipeline wires the generation capability into a pipeline. A missing
// API key or a failed client construction is not fatal: the pipeline then
// serves every document from the deterministic composer. The returned
// cleanup releases the capability's resources and is safe to call always.
func buildPipeline(ctx context.Context, cfg *config.Config) (*pipeline.Pipeline, func()) {
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; running with deterministic composer only")
		return pipeline.New(nil, nil), func() {}
	}

	llmConfig := llm.DefaultConfig()
	if cfg.SummaryModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierSummary, cfg.SummaryModel)
	}
	if cfg.GenerationModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierGeneration, cfg.GenerationModel)
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.GeminiAPIKey)
	if err != nil {
		log.Printf("failed to create generation client, falling back to composer: %v", err)
		return pipeline.New(nil, nil), func() {}
	}

	// No local tokenizer exists for the hosted models; passing nil makes
	// the length guard use its character approximation.
	return pipeline.New(client, nil), func() { _ = client.Close() }
}
