// Package pipeline provides the high-level orchestration for document
// generation. Each operation tries a learned-model path where that is
// semantically useful and degrades to deterministic composition when the
// capability is absent, fails, or returns an implausibly short result. No
// operation ever returns an error: a degraded but well-formed document is
// always preferred over a failure.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/compose"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/extract"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/guard"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/llm"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/prompts"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

// Token budgets per task, matched to the capability's input window.
const (
	summaryTokenBudget = 400
	resumeTokenBudget  = 350
	coverTokenBudget   = 200
)

// Minimum plausible lengths for model output. Shorter results are treated
// as generation failures and routed to the fallback.
const (
	minResumeLength = 100
	minCoverLength  = 50
)

// maxSummarySentences is both the short-circuit threshold and the fallback
// summary length.
const maxSummarySentences = 3

// summaryKeywords mark sentences worth keeping in the heuristic summary.
var summaryKeywords = []string{
	"experiência", "desenvolvedor", "engenheiro", "analista", "especialista", "foco",
}

const promptFile = "generation.json"

// fallbackModelName is echoed in responses when no generation capability is
// configured and every document comes from the deterministic composer.
const fallbackModelName = "template-composer"

const minimalResumeTemplate = `# Currículo Otimizado

## Resumo Profissional
%s

## Habilidades Principais
%s

## Experiência
Profissional com sólida experiência em desenvolvimento de software e tecnologia.

---
*Currículo gerado automaticamente*`

// Pipeline orchestrates document generation. It is constructed once at
// startup and read-only thereafter; all per-request state lives on the
// stack, so a single Pipeline is safe for concurrent use.
type Pipeline struct {
	client    llm.Client      // nil when no capability is configured
	tokenizer guard.Tokenizer // nil routes the guard to the character heuristic
}

// New creates a Pipeline. Both arguments may be nil: a nil client starts
// every operation directly at the compose fallback, a nil tokenizer makes
// the length guard approximate tokens by characters.
func New(client llm.Client, tokenizer guard.Tokenizer) *Pipeline {
	return &Pipeline{client: client, tokenizer: tokenizer}
}

// ModelName identifies which capability backs the pipeline. Informational
// only; echoed in API responses.
func (p *Pipeline) ModelName() string {
	if p.client == nil {
		return fallbackModelName
	}
	return p.client.GetModel(llm.TierGeneration)
}

// Summarize condenses a resume to a few sentences. Inputs that already fit
// in three sentences are returned verbatim; longer inputs go through the
// model path and fall back to keyword-bearing sentence extraction.
func (p *Pipeline) Summarize(ctx context.Context, resumeText string) string {
	if strings.TrimSpace(resumeText) == "" {
		return ""
	}

	sentences := extract.Sentences(resumeText)
	if len(sentences) <= maxSummarySentences {
		return resumeText
	}

	return runCascade(ctx,
		p.modelSummarize(resumeText),
		keywordSummary(sentences),
		leadingSummary(sentences),
	)
}

func (p *Pipeline) modelSummarize(resumeText string) attempt {
	return func(ctx context.Context) (string, bool) {
		bounded := guard.Bound(resumeText, p.tokenizer, summaryTokenBudget)
		prompt := prompts.Format(prompts.MustGet(promptFile, "summarize-resume"), map[string]string{
			"ResumeText": bounded,
		})
		out, err := p.invoke(ctx, llm.TierSummary, prompt)
		if err != nil {
			log.Printf("[pipeline] summarization model path failed: %v", err)
			return "", false
		}
		return out, out != ""
	}
}

// keywordSummary keeps up to three sentences that mention experience or a
// role keyword. Skips when no sentence qualifies.
func keywordSummary(sentences []string) attempt {
	return func(context.Context) (string, bool) {
		var kept []string
		for _, sentence := range sentences {
			lower := strings.ToLower(sentence)
			for _, kw := range summaryKeywords {
				if strings.Contains(lower, kw) {
					kept = append(kept, sentence)
					break
				}
			}
			if len(kept) >= maxSummarySentences {
				break
			}
		}
		if len(kept) == 0 {
			return "", false
		}
		return strings.Join(kept, " "), true
	}
}

// leadingSummary joins the first three sentences. Always succeeds.
func leadingSummary(sentences []string) attempt {
	return func(context.Context) (string, bool) {
		return strings.Join(sentences[:maxSummarySentences], " "), true
	}
}

// OptimizeResume produces a tailored resume in Markdown. Deterministic
// composition is the primary path since it always succeeds; the model path
// only backs it up against an unexpected composer failure, and a minimal
// fixed template closes the cascade.
func (p *Pipeline) OptimizeResume(ctx context.Context, resumeText, jobDescription string) string {
	signals := extract.Signals(resumeText, jobDescription)
	return runCascade(ctx,
		composedResume(signals, resumeText, jobDescription),
		p.modelResume(resumeText, jobDescription),
		p.minimalResume(resumeText, signals),
	)
}

// composedResume guards the composer with a recover so that a composer bug
// degrades to the model path instead of escaping the operation boundary.
func composedResume(signals *types.ExtractedSignals, resumeText, jobDescription string) attempt {
	return func(context.Context) (doc string, ok bool) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[pipeline] resume composer panic: %v", r)
				doc, ok = "", false
			}
		}()
		return compose.Resume(signals, resumeText, jobDescription), true
	}
}

func (p *Pipeline) modelResume(resumeText, jobDescription string) attempt {
	return func(ctx context.Context) (string, bool) {
		jobContext := ""
		if jobDescription != "" {
			jobContext = "\n\nVaga: " + jobDescription
		}
		prompt := prompts.Format(prompts.MustGet(promptFile, "optimize-resume"), map[string]string{
			"JobContext": jobContext,
			"ResumeText": resumeText,
		})
		bounded := guard.Bound(prompt, p.tokenizer, resumeTokenBudget)
		out, err := p.invoke(ctx, llm.TierGeneration, bounded)
		if err != nil {
			log.Printf("[pipeline] resume model path failed: %v", err)
			return "", false
		}
		return out, len(out) > minResumeLength
	}
}

// minimalResume renders the last-resort fixed template around the summary
// and the top technologies. Always succeeds.
func (p *Pipeline) minimalResume(resumeText string, signals *types.ExtractedSignals) attempt {
	return func(ctx context.Context) (string, bool) {
		summary := p.Summarize(ctx, resumeText)
		techs := strings.Join(firstN(signals.Technologies, 8), ", ")
		return fmt.Sprintf(minimalResumeTemplate, summary, techs), true
	}
}

// CoverLetter drafts a cover letter. The model path runs first with a
// prompt built from the extracted name, years and top technologies; any
// failure or implausibly short result falls back to the fixed letter
// template.
func (p *Pipeline) CoverLetter(ctx context.Context, resumeText, jobDescription string) string {
	signals := extract.Signals(resumeText, jobDescription)
	return runCascade(ctx,
		p.modelCoverLetter(signals, resumeText),
		func(context.Context) (string, bool) {
			return compose.CoverLetter(signals, resumeText), true
		},
	)
}

func (p *Pipeline) modelCoverLetter(signals *types.ExtractedSignals, resumeText string) attempt {
	return func(ctx context.Context) (string, bool) {
		years := signals.YearsOfExperience
		if years == "" {
			years = "vários anos"
		}
		prompt := prompts.Format(prompts.MustGet(promptFile, "cover-letter"), map[string]string{
			"Name":         compose.CandidateName(resumeText),
			"Years":        years,
			"Technologies": strings.Join(firstN(signals.Technologies, 3), ", "),
		})
		bounded := guard.Bound(prompt, p.tokenizer, coverTokenBudget)
		out, err := p.invoke(ctx, llm.TierGeneration, bounded)
		if err != nil {
			log.Printf("[pipeline] cover letter model path failed: %v", err)
			return "", false
		}
		return out, len(out) > minCoverLength
	}
}

// invoke calls the generation capability with already-bounded text. All
// failures come back as llm errors for the caller to log and convert into a
// fallback execution.
func (p *Pipeline) invoke(ctx context.Context, tier llm.ModelTier, boundedPrompt string) (string, error) {
	if p.client == nil {
		return "", llm.ErrUnavailable
	}
	out, err := p.client.GenerateContent(ctx, boundedPrompt, tier)
	if err != nil {
		return "", &llm.GenerationError{Task: string(tier), Cause: err}
	}
	return strings.TrimSpace(out), nil
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
