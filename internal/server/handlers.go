package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/db"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

// handleSummarize summarizes a resume. The operation itself cannot fail;
// only a malformed request body produces an error response.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req types.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary := s.pipeline.Summarize(r.Context(), req.ResumeText)

	s.persist(r.Context(), db.KindSummary, req.ResumeText, "", summary)
	s.jsonResponse(w, http.StatusOK, types.SummarizeResponse{
		Summary: summary,
		Model:   s.pipeline.ModelName(),
	})
}

// handleGenerateResume produces the optimized resume Markdown.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	markdown := s.pipeline.OptimizeResume(r.Context(), req.ResumeText, req.JobDescription)

	s.persist(r.Context(), db.KindResume, req.ResumeText, req.JobDescription, markdown)
	s.jsonResponse(w, http.StatusOK, types.GenerateResumeResponse{
		OptimizedResumeMarkdown: markdown,
		Model:                   s.pipeline.ModelName(),
	})
}

// handleCoverLetter produces the cover letter Markdown.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	markdown := s.pipeline.CoverLetter(r.Context(), req.ResumeText, req.JobDescription)

	s.persist(r.Context(), db.KindCoverLetter, req.ResumeText, req.JobDescription, markdown)
	s.jsonResponse(w, http.StatusOK, types.CoverLetterResponse{
		CoverLetterMarkdown: markdown,
		Model:               s.pipeline.ModelName(),
	})
}

// handleSimulateInterview produces the mock interview transcript.
func (s *Server) handleSimulateInterview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	qa := s.pipeline.SimulateInterview(req.ResumeText, req.JobDescription)

	if payload, err := json.Marshal(qa); err == nil {
		s.persist(r.Context(), db.KindInterview, req.ResumeText, req.JobDescription, string(payload))
	}
	s.jsonResponse(w, http.StatusOK, types.SimulateInterviewResponse{
		QA:    qa,
		Model: s.pipeline.ModelName(),
	})
}

// decodeGenerateRequest decodes and validates the shared request shape and
// resolves a job URL to posting text when one was supplied instead of a
// description. Writes the error response itself when it reports false.
func (s *Server) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (*types.GenerateRequest, bool) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return nil, false
	}

	if req.JobDescription == "" && req.JobURL != "" {
		text, err := s.fetchJob(r.Context(), req.JobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
			return nil, false
		}
		req.JobDescription = text
	}

	return &req, true
}

// persist saves a generation result when a store is configured. History is
// best-effort: a storage failure is logged and never surfaces to the
// caller.
func (s *Server) persist(ctx context.Context, kind, resumeText, jobDescription, content string) {
	if s.store == nil {
		return
	}
	_, err := s.store.SaveDocument(ctx, &db.DocumentRecord{
		Kind:           kind,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Content:        content,
		Model:          s.pipeline.ModelName(),
	})
	if err != nil {
		log.Printf("[history] failed to save %s document: %v", kind, err)
	}
}
