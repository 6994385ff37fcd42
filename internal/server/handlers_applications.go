package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/db"
)

// handleCreateApplication generates the full application kit (summary,
// optimized resume, cover letter, mock interview) in one call.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	kit := s.pipeline.ApplicationKit(r.Context(), req.ResumeText, req.JobDescription)

	if payload, err := json.Marshal(kit); err == nil {
		s.persist(r.Context(), db.KindKit, req.ResumeText, req.JobDescription, string(payload))
	}
	s.jsonResponse(w, http.StatusOK, kit)
}

// handleListApplications returns recently generated documents, newest
// first. Requires a configured store.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotImplemented, "Application history is not configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	records, err := s.store.ListDocuments(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	if records == nil {
		records = []db.DocumentRecord{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": records})
}

// handleGetApplication returns one generated document by ID.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotImplemented, "Application history is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	record, err := s.store.GetDocument(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get application")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}
