package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_CapsAtThree(t *testing.T) {
	text := `Projetos relevantes:
- Alpha: primeiro
- Beta: segundo
- Gama: terceiro
- Delta: quarto
`
	projects := Projects(text)
	require.Len(t, projects, 3)
	assert.Equal(t, "Alpha: primeiro", projects[0])
	assert.Equal(t, "Gama: terceiro", projects[2])
}

func TestProjects_EndsAtNextHeading(t *testing.T) {
	text := `Projetos relevantes:
- Alpha: primeiro
Habilidades:
- Beta: não é projeto
`
	projects := Projects(text)
	assert.Equal(t, []string{"Alpha: primeiro"}, projects)
}

func TestProjects_BulletWithoutColonSkipped(t *testing.T) {
	// A colon-less bullet is not captured but does not close the section.
	text := `Projetos relevantes:
- Sem dois pontos
- Alpha: descrição
`
	projects := Projects(text)
	assert.Equal(t, []string{"Alpha: descrição"}, projects)
}

func TestProjects_BlankLinesInsideSection(t *testing.T) {
	text := `Projetos relevantes:

- Alpha: primeiro

- Beta: segundo
`
	projects := Projects(text)
	assert.Equal(t, []string{"Alpha: primeiro", "Beta: segundo"}, projects)
}

func TestProjects_NoSection(t *testing.T) {
	assert.Empty(t, Projects("currículo sem seção de projetos\n- Alpha: órfão"))
}

func TestProjects_HeadingNeedsBothWords(t *testing.T) {
	// "Projetos:" alone does not open the section.
	text := `Projetos:
- Alpha: primeiro
`
	assert.Empty(t, Projects(text))
}

func TestCertifications(t *testing.T) {
	text := `Certificações:
- AWS Certified Developer
- Scrum Master
Formação:
- Bacharel
`
	certs := Certifications(text)
	assert.Equal(t, []string{"AWS Certified Developer", "Scrum Master"}, certs)
}

func TestCertifications_AnyNonEmptyLineEnds(t *testing.T) {
	text := `Certificações:
- Primeira
texto solto
- Depois do fim
`
	certs := Certifications(text)
	assert.Equal(t, []string{"Primeira"}, certs)
}

func TestCertifications_NoSection(t *testing.T) {
	assert.Empty(t, Certifications("- AWS Certified Developer"))
}
