package compose

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

// leadingNameRe captures a name-like run of letters and whitespace at the
// start of the resume. A best-effort heuristic: resumes that do not open
// with the candidate's name fall back to a generic salutation.
var leadingNameRe = regexp.MustCompile(`^([A-Za-z\sÀ-ÿ]+)`)

// defaultCandidateName is used when no leading name is found.
const defaultCandidateName = "Candidato"

// defaultTechList fills the cover letter when no technology was detected.
const defaultTechList = "Python, Machine Learning, APIs"

const coverLetterTemplate = `# Carta de Apresentação

**%s**

---

Prezados senhores,

Tenho grande interesse na vaga anunciada e acredito que minha experiência de %s na área de desenvolvimento e tecnologia pode agregar valor significativo à sua equipe.

Minha experiência técnica inclui trabalho com %s, além de sólido background em desenvolvimento de soluções escaláveis e inovadoras.

Estou entusiasmado com a oportunidade de contribuir para os objetivos da empresa e aplicar meus conhecimentos em projetos desafiadores.

Agradeço a consideração e fico à disposição para maiores esclarecimentos.

Atenciosamente,
**%s**
`

// CandidateName extracts a candidate name from the leading characters of
// the resume text, defaulting to "Candidato".
func CandidateName(resumeText string) string {
	m := leadingNameRe.FindStringSubmatch(strings.TrimSpace(resumeText))
	if m == nil {
		return defaultCandidateName
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return defaultCandidateName
	}
	return name
}

// CoverLetter fills the fixed cover letter template with the candidate
// name, years of experience and up to four detected technologies. Pure and
// total like Resume.
func CoverLetter(signals *types.ExtractedSignals, resumeText string) string {
	name := CandidateName(resumeText)

	years := signals.YearsOfExperience
	if years == "" {
		years = "vários anos"
	}

	techList := defaultTechList
	if len(signals.Technologies) > 0 {
		techList = strings.Join(firstN(signals.Technologies, 4), ", ")
	}

	return fmt.Sprintf(coverLetterTemplate, name, years, techList, name)
}
