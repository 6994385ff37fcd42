package pipeline

import (
	"fmt"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/extract"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

// interviewLength is the fixed transcript size: technical, project,
// architecture, teamwork, motivation — always in that order.
const interviewLength = 5

// SimulateInterview produces a mock interview transcript. This operation is
// purely deterministic: no model path exists, answers are synthesized from
// extracted signals with fixed phrasing when a signal is absent.
func (p *Pipeline) SimulateInterview(resumeText, jobDescription string) []types.QAItem {
	signals := extract.Signals(resumeText, jobDescription)

	qa := make([]types.QAItem, 0, interviewLength)
	qa = append(qa, technicalQuestion(signals))
	qa = append(qa, projectQuestion(signals))
	qa = append(qa,
		types.QAItem{
			Question: "Como você garante a qualidade e escalabilidade dos seus sistemas?",
			Answer:   "Aplico princípios de arquitetura limpa, uso de testes automatizados, containerização com Docker, e implemento monitoramento contínuo. Sempre considero performance e manutenibilidade.",
		},
		types.QAItem{
			Question: "Como você trabalha em equipe multidisciplinar?",
			Answer:   "Utilizo metodologias ágeis, mantenho comunicação clara sobre progresso e desafios, documento bem o código para facilitar a colaboração, e estou sempre disponível para apoiar colegas.",
		},
		types.QAItem{
			Question: "Por que você tem interesse nesta posição?",
			Answer:   "Estou motivado em aplicar minhas habilidades técnicas para resolver problemas reais e contribuir com uma equipe que valoriza inovação, crescimento profissional e excelência técnica.",
		},
	)
	return qa
}

// technicalQuestion asks about the highest-priority technology, preferring
// the job-description-aligned ordering so the interview opens with the
// skill the vacancy cares most about.
func technicalQuestion(signals *types.ExtractedSignals) types.QAItem {
	techs := signals.PrioritizedTechnologies
	if len(techs) == 0 {
		techs = signals.Technologies
	}
	if len(techs) == 0 {
		return types.QAItem{
			Question: "Descreva sua experiência com as tecnologias que você mais domina.",
			Answer:   "Tenho experiência sólida com as principais tecnologias do meu stack, desenvolvendo soluções robustas e escaláveis em projetos diversos.",
		}
	}

	years := signals.YearsOfExperience
	if years == "" {
		years = "alguns anos"
	}
	main := techs[0]
	return types.QAItem{
		Question: fmt.Sprintf("Descreva sua experiência prática com %s.", main),
		Answer: fmt.Sprintf(
			"Tenho experiência sólida com %s, desenvolvendo soluções robustas e escaláveis. Trabalho com essa tecnologia há %s, aplicando-a em projetos diversos.",
			main, years,
		),
	}
}

func projectQuestion(signals *types.ExtractedSignals) types.QAItem {
	if len(signals.Projects) > 0 {
		return types.QAItem{
			Question: "Conte sobre um projeto relevante que você desenvolveu.",
			Answer:   signals.Projects[0],
		}
	}
	return types.QAItem{
		Question: "Descreva um projeto técnico que você considera seu maior desafio.",
		Answer:   "Desenvolvi um sistema completo de automação que resultou em melhoria significativa na eficiência dos processos, utilizando tecnologias modernas e boas práticas de desenvolvimento.",
	}
}
