package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

// ApplicationKit generates all four documents for one resume/job pair. The
// operations are independent and only the model paths block, so they run
// concurrently. Individual operations never fail, so the group always
// completes with a full kit.
func (p *Pipeline) ApplicationKit(ctx context.Context, resumeText, jobDescription string) *types.ApplicationKit {
	kit := &types.ApplicationKit{Model: p.ModelName()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kit.Summary = p.Summarize(ctx, resumeText)
		return nil
	})
	g.Go(func() error {
		kit.OptimizedResume = p.OptimizeResume(ctx, resumeText, jobDescription)
		return nil
	})
	g.Go(func() error {
		kit.CoverLetterMarkdown = p.CoverLetter(ctx, resumeText, jobDescription)
		return nil
	})
	g.Go(func() error {
		kit.QA = p.SimulateInterview(resumeText, jobDescription)
		return nil
	})
	_ = g.Wait()

	return kit
}
