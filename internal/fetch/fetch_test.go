package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMainText_JobDescriptionSelector(t *testing.T) {
	html := `
		<html>
			<body>
				<nav>Menu que não deve aparecer</nav>
				<div class="job-description">
					<h1>Desenvolvedor Backend</h1>
					<p>Experiência com Python e AWS.</p>
				</div>
				<footer>Rodapé</footer>
			</body>
		</html>
	`

	text, err := ExtractMainText(html, jobPostingSelectors)
	require.NoError(t, err)
	assert.Contains(t, text, "Desenvolvedor Backend")
	assert.Contains(t, text, "Experiência com Python e AWS.")
	assert.NotContains(t, text, "Menu")
	assert.NotContains(t, text, "Rodapé")
}

func TestExtractMainText_SelectorOrder(t *testing.T) {
	// ".job-description" outranks "main" even when main comes first in the
	// document.
	html := `
		<html>
			<body>
				<main>Conteúdo genérico</main>
				<div class="job-description">Vaga específica</div>
			</body>
		</html>
	`

	text, err := ExtractMainText(html, jobPostingSelectors)
	require.NoError(t, err)
	assert.Equal(t, "Vaga específica", text)
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><div><p>Texto solto da página.</p></div></body></html>`

	text, err := ExtractMainText(html, jobPostingSelectors)
	require.NoError(t, err)
	assert.Equal(t, "Texto solto da página.", text)
}

func TestExtractMainText_RemovesScripts(t *testing.T) {
	html := `
		<html>
			<body>
				<script>var x = "código";</script>
				<style>.a { color: red; }</style>
				<p>Conteúdo real</p>
			</body>
		</html>
	`

	text, err := ExtractMainText(html, jobPostingSelectors)
	require.NoError(t, err)
	assert.Equal(t, "Conteúdo real", text)
}

func TestCleanWhitespace(t *testing.T) {
	got := cleanWhitespace("  linha   um  \n\n\n\n\nlinha    dois  ")
	assert.Equal(t, "linha um\n\nlinha dois", got)
}

func TestJobText_FetchesAndExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		fmt.Fprint(w, `<html><body><main>Vaga para Desenvolvedora Python.</main></body></html>`)
	}))
	defer srv.Close()

	text, err := JobText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Vaga para Desenvolvedora Python.", text)
}

func TestJobText_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobText(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobText_InvalidURL(t *testing.T) {
	_, err := JobText(context.Background(), "not-a-url")
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}
