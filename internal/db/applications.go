package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Document kinds stored in the applications table.
const (
	KindSummary     = "summary"
	KindResume      = "resume"
	KindCoverLetter = "cover_letter"
	KindInterview   = "interview"
	KindKit         = "kit"
)

// ErrNotFound indicates the requested application record does not exist.
var ErrNotFound = errors.New("application not found")

// DocumentRecord is one persisted generation result. Content holds the
// rendered Markdown, or JSON for interview transcripts and full kits.
type DocumentRecord struct {
	ID             uuid.UUID `json:"id"`
	Kind           string    `json:"kind"`
	ResumeText     string    `json:"resumeText"`
	JobDescription string    `json:"jobDescription,omitempty"`
	Content        string    `json:"content"`
	Model          string    `json:"model"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SaveDocument inserts a generation result and returns its ID.
func (s *Store) SaveDocument(ctx context.Context, rec *DocumentRecord) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO applications (id, kind, resume_text, job_description, content, model)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, rec.Kind, rec.ResumeText, rec.JobDescription, rec.Content, rec.Model,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document: %w", err)
	}
	return id, nil
}

// ListDocuments returns the most recent records, newest first. The resume
// and job description texts are included so callers can re-run a request.
func (s *Store) ListDocuments(ctx context.Context, limit int) ([]DocumentRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, kind, resume_text, job_description, content, model, created_at
		 FROM applications
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var records []DocumentRecord
	for rows.Next() {
		var rec DocumentRecord
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.ResumeText, &rec.JobDescription,
			&rec.Content, &rec.Model, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}
	return records, nil
}

// GetDocument returns one record by ID, or ErrNotFound.
func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*DocumentRecord, error) {
	var rec DocumentRecord
	err := s.pool.QueryRow(ctx,
		`SELECT id, kind, resume_text, job_description, content, model, created_at
		 FROM applications
		 WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.Kind, &rec.ResumeText, &rec.JobDescription,
		&rec.Content, &rec.Model, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &rec, nil
}
