// Package compose assembles structured Markdown documents (resume, cover
// letter) from extracted signals. Composition is template-driven, pure and
// total: it always produces a well-formed document and never depends on a
// generation capability.
package compose

import (
	"fmt"
	"strings"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

const maxExperienceEntries = 3

// Resume composes an optimized resume in Markdown from the extracted
// signals. The raw resume text drives keyword-gated template sentences; the
// job description drives the title and the differentiators section. Every
// section header is always present except education, certifications and
// differentiators, which are conditional on their signals.
func Resume(signals *types.ExtractedSignals, resumeText, jobDescription string) string {
	resumeLower := strings.ToLower(resumeText)

	name := firstNonEmptyLine(resumeText)
	if name == "" {
		name = "Profissional"
	}

	var md []string
	md = append(md,
		"# "+name,
		"## "+titleFor(jobDescription),
		"",
		"---",
		"",
	)

	md = append(md, SectionSummary, "")
	md = appendSummary(md, signals, resumeLower)

	md = append(md, SectionExperience, "")
	md = appendExperience(md, signals, resumeLower)

	md = append(md, SectionProjects, "")
	md = appendProjects(md, signals)

	md = append(md, SectionSkills, "")
	md = appendSkills(md, signals.PrioritizedTechnologies)

	if signals.Education != "" {
		md = append(md, SectionEducation, "", "**"+signals.Education+"**", "")
	}

	if len(signals.Certifications) > 0 {
		md = append(md, SectionCertifications, "")
		for _, cert := range signals.Certifications {
			md = append(md, "- "+cert)
		}
		md = append(md, "")
	}

	if jobDescription != "" {
		md = appendDifferentiators(md, signals.PrioritizedTechnologies, strings.ToLower(jobDescription))
	}

	return strings.Join(md, "\n")
}

// titleFor picks the resume title from the first role trigger present in
// the job description.
func titleFor(jobDescription string) string {
	jobLower := strings.ToLower(jobDescription)
	for _, trigger := range roleTitleTriggers {
		if strings.Contains(jobLower, trigger.keyword) {
			return trigger.title
		}
	}
	return defaultTitle
}

func appendSummary(md []string, signals *types.ExtractedSignals, resumeLower string) []string {
	years := signals.YearsOfExperience
	if years == "" {
		years = "3+ anos"
	}

	parts := []string{
		fmt.Sprintf("Profissional com %s de experiência em desenvolvimento e tecnologia.", years),
	}
	for _, gated := range summarySentences {
		if strings.Contains(resumeLower, gated.keyword) {
			parts = append(parts, gated.sentence)
		}
	}
	if len(signals.PrioritizedTechnologies) > 0 {
		main := firstN(signals.PrioritizedTechnologies, 4)
		parts = append(parts, fmt.Sprintf("Domínio técnico em %s.", naturalList(main)))
	}

	for _, part := range parts {
		md = append(md, part, "")
	}
	return md
}

func appendExperience(md []string, signals *types.ExtractedSignals, resumeLower string) []string {
	if len(signals.ExperienceLines) == 0 {
		return append(md, placeholderExperience...)
	}

	bullets := experienceBullets(resumeLower)
	for _, exp := range firstN(signals.ExperienceLines, maxExperienceEntries) {
		role, company, start, end := splitExperienceLine(exp)
		md = append(md,
			"### "+role,
			fmt.Sprintf("**%s** | %s - %s", company, start, end),
			"",
		)
		md = append(md, bullets...)
		md = append(md, "")
	}
	return md
}

// splitExperienceLine recovers role/company/period parts from a
// "period: role @ company" line. This is a best-effort legacy heuristic over
// the "@" separator; lines in other shapes degrade to generic parts rather
// than failing.
func splitExperienceLine(exp string) (role, company, start, end string) {
	clean := strings.NewReplacer("—", "-", "–", "-", ":", "").Replace(exp)

	role = clean
	company = "Empresa"
	if i := strings.Index(clean, "@"); i >= 0 {
		role = strings.TrimSpace(clean[:i])
		company = strings.TrimSpace(clean[i+1:])
	}

	fields := strings.Fields(clean)
	end = "Presente"
	if len(fields) > 0 {
		start = fields[0]
	}
	if len(fields) > 1 {
		end = fields[1]
	}
	return role, company, start, end
}

func experienceBullets(resumeLower string) []string {
	var bullets []string
	for _, gated := range contextBullets {
		if strings.Contains(resumeLower, gated.keyword) {
			bullets = append(bullets, gated.bullet)
		}
	}
	if len(bullets) == 0 {
		bullets = defaultExperienceBullets
	}
	return bullets
}

func appendProjects(md []string, signals *types.ExtractedSignals) []string {
	if len(signals.Projects) > 0 {
		for i, project := range signals.Projects {
			name, desc := splitProject(project)
			md = append(md, fmt.Sprintf("### %d. %s", i+1, name), desc, "")
		}
		return md
	}

	techs := firstN(signals.PrioritizedTechnologies, 3)
	for i, project := range defaultProjects {
		md = append(md, fmt.Sprintf("### %d. %s", i+1, project.name), project.description)
		if len(techs) > 0 {
			md = append(md, "**Tecnologias:** "+strings.Join(techs, ", "))
		}
		md = append(md, "")
	}
	return md
}

// splitProject splits a "name: description" bullet on the first colon.
func splitProject(project string) (name, desc string) {
	name = strings.TrimSpace(project)
	desc = "Projeto de tecnologia"
	if i := strings.Index(project, ":"); i >= 0 {
		name = strings.TrimSpace(project[:i])
		if d := strings.TrimSpace(project[i+1:]); d != "" {
			desc = d
		}
	}
	return name, desc
}

func appendSkills(md []string, prioritized []string) []string {
	if len(prioritized) == 0 {
		md = append(md, defaultSkillLines...)
		return append(md, "")
	}

	for _, category := range skillCategories {
		var members []string
		for _, t := range prioritized {
			if contains(category.members, t) {
				members = append(members, t)
			}
		}
		if len(members) > 0 {
			md = append(md, fmt.Sprintf("**%s:** %s", category.label, strings.Join(members, ", ")))
		}
	}
	return append(md, "")
}

func appendDifferentiators(md []string, prioritized []string, jobLower string) []string {
	md = append(md, SectionDifferentiators, "")

	var differentiators []string
	for _, d := range techDifferentiators {
		if strings.Contains(jobLower, d.keyword) && anyTechMatches(prioritized, d.keyword) {
			differentiators = append(differentiators, d.sentence)
		}
	}
	if len(differentiators) == 0 {
		differentiators = genericDifferentiators
	}

	for _, diff := range firstN(differentiators, maxDifferentiators) {
		md = append(md, diff, "")
	}
	return md
}

// anyTechMatches reports whether some prioritized technology, lowercased,
// is contained in the differentiator keyword.
func anyTechMatches(prioritized []string, keyword string) bool {
	for _, tech := range prioritized {
		if strings.Contains(keyword, strings.ToLower(tech)) {
			return true
		}
	}
	return false
}

// naturalList joins items with commas and a final "e" conjunction following
// Portuguese list punctuation. A single item is returned as-is.
func naturalList(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " e " + items[len(items)-1]
}

func firstNonEmptyLine(text string) string {
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			return line
		}
	}
	return ""
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
