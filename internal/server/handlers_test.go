package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/pipeline"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

func newTestServer() *Server {
	return New(Config{
		Port:     0,
		Pipeline: pipeline.New(nil, nil),
	})
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleSummarize(t *testing.T) {
	body := types.SummarizeRequest{
		ResumeText: "Jane Doe é desenvolvedora. Trabalha há 5 anos. Gosta de Python. Mora em SP.",
	}
	rec := doRequest(t, newTestServer(), http.MethodPost, "/summarize", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Summary)
	assert.Equal(t, "template-composer", resp.Model)
}

func TestHandleSummarize_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newTestServer().httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHandleGenerateResume(t *testing.T) {
	body := types.GenerateRequest{
		ResumeText:     "Jane Doe\nDesenvolvedora Python com 5 anos de experiência.",
		JobDescription: "Vaga para Desenvolvedor Backend com AWS.",
	}
	rec := doRequest(t, newTestServer(), http.MethodPost, "/generate/resume", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.GenerateResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.OptimizedResumeMarkdown, "# Jane Doe")
	assert.Contains(t, resp.OptimizedResumeMarkdown, "## Desenvolvedor Backend")
	assert.Equal(t, "template-composer", resp.Model)
}

func TestHandleGenerateResume_InvalidJobURL(t *testing.T) {
	body := types.GenerateRequest{
		ResumeText: "Jane Doe",
		JobURL:     "not-a-url",
	}
	rec := doRequest(t, newTestServer(), http.MethodPost, "/generate/resume", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request")
}

func TestHandleGenerateResume_FetchesJobURL(t *testing.T) {
	s := newTestServer()
	s.fetchJob = func(_ context.Context, url string) (string, error) {
		assert.Equal(t, "https://example.com/vaga", url)
		return "Vaga para Desenvolvedor Backend.", nil
	}

	body := types.GenerateRequest{
		ResumeText: "Jane Doe",
		JobURL:     "https://example.com/vaga",
	}
	rec := doRequest(t, s, http.MethodPost, "/generate/resume", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.GenerateResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.OptimizedResumeMarkdown, "## Desenvolvedor Backend")
}

func TestHandleGenerateResume_FetchFailure(t *testing.T) {
	s := newTestServer()
	s.fetchJob = func(context.Context, string) (string, error) {
		return "", errors.New("connection refused")
	}

	body := types.GenerateRequest{
		ResumeText: "Jane Doe",
		JobURL:     "https://example.com/vaga",
	}
	rec := doRequest(t, s, http.MethodPost, "/generate/resume", body)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch job posting")
}

func TestHandleGenerateResume_JobDescriptionWinsOverURL(t *testing.T) {
	s := newTestServer()
	fetched := false
	s.fetchJob = func(context.Context, string) (string, error) {
		fetched = true
		return "", nil
	}

	body := types.GenerateRequest{
		ResumeText:     "Jane Doe",
		JobDescription: "Vaga frontend.",
		JobURL:         "https://example.com/vaga",
	}
	rec := doRequest(t, s, http.MethodPost, "/generate/resume", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, fetched, "URL must not be fetched when a description is supplied")
}

func TestHandleCoverLetter(t *testing.T) {
	body := types.GenerateRequest{
		ResumeText: "Jane Doe\nDesenvolvedora com 5 anos de experiência em Python.",
	}
	rec := doRequest(t, newTestServer(), http.MethodPost, "/cover", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.CoverLetterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.CoverLetterMarkdown, "# Carta de Apresentação")
	assert.Contains(t, resp.CoverLetterMarkdown, "experiência de 5 anos")
}

func TestHandleSimulateInterview(t *testing.T) {
	body := types.GenerateRequest{
		ResumeText:     "Jane Doe trabalha com Python e AWS.",
		JobDescription: "Vaga exige AWS.",
	}
	rec := doRequest(t, newTestServer(), http.MethodPost, "/simulate/interview", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.SimulateInterviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.QA, 5)
	assert.Contains(t, resp.QA[0].Question, "AWS")
}

func TestHandleCreateApplication(t *testing.T) {
	body := types.GenerateRequest{
		ResumeText:     "Jane Doe\nDesenvolvedora com 5 anos de experiência em Python.",
		JobDescription: "Vaga backend com Python.",
	}
	rec := doRequest(t, newTestServer(), http.MethodPost, "/applications", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var kit types.ApplicationKit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kit))
	assert.NotEmpty(t, kit.Summary)
	assert.NotEmpty(t, kit.OptimizedResume)
	assert.NotEmpty(t, kit.CoverLetterMarkdown)
	assert.Len(t, kit.QA, 5)
}

func TestHandleListApplications_WithoutStore(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/applications", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestHandleGetApplication_WithoutStore(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/applications/123", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestCORSHeaders(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestOptionsRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/summarize", nil)
	rec := httptest.NewRecorder()
	newTestServer().httpServer.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
