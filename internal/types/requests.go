package types

import (
	"github.com/go-playground/validator/v10"
)

// SummarizeRequest represents the request body for POST /summarize.
type SummarizeRequest struct {
	ResumeText string `json:"resumeText"`
}

// GenerateRequest represents the request body for the resume, cover letter,
// interview and full-application endpoints. JobDescription and JobURL are
// both optional; when only JobURL is set the server fetches the posting and
// extracts its text before running the pipeline.
type GenerateRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription,omitempty"`
	JobURL         string `json:"jobUrl,omitempty" validate:"omitempty,url"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SummarizeResponse is the response for POST /summarize.
type SummarizeResponse struct {
	Summary string `json:"summary"`
	Model   string `json:"model"`
}

// GenerateResumeResponse is the response for POST /generate/resume.
type GenerateResumeResponse struct {
	OptimizedResumeMarkdown string `json:"optimizedResumeMarkdown"`
	Model                   string `json:"model"`
}

// CoverLetterResponse is the response for POST /cover.
type CoverLetterResponse struct {
	CoverLetterMarkdown string `json:"coverLetterMarkdown"`
	Model               string `json:"model"`
}

// SimulateInterviewResponse is the response for POST /simulate/interview.
type SimulateInterviewResponse struct {
	QA    []QAItem `json:"qa"`
	Model string   `json:"model"`
}

// ApplicationKit bundles all four derived documents for a single
// resume/job-description pair.
type ApplicationKit struct {
	Summary             string   `json:"summary"`
	OptimizedResume     string   `json:"optimizedResumeMarkdown"`
	CoverLetterMarkdown string   `json:"coverLetterMarkdown"`
	QA                  []QAItem `json:"qa"`
	Model               string   `json:"model"`
}
