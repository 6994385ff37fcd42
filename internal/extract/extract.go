// Package extract provides stateless heuristics that pull structured signals
// (technologies, years of experience, projects, education, certifications)
// out of raw resume and job description text. Every function is a pure
// function of its input: identical text always yields identical signals.
package extract

import (
	"regexp"
	"strings"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
)

var (
	// sentenceBoundaryRe marks a sentence end: terminal punctuation
	// followed by whitespace. The punctuation stays with its sentence.
	sentenceBoundaryRe = regexp.MustCompile(`[.?!]\s+`)

	yearsRe = regexp.MustCompile(`(?i)(\d+)\s*(anos|anos de|year|years)`)

	// experienceLineRe matches "YYYY-YYYY:" / "YYYY-presente:" period
	// lines, accepting hyphen, en dash and minus sign separators.
	experienceLineRe = regexp.MustCompile(`20\d{2}[–\-−]\s*(presente|20\d{2})\s*:`)

	educationRe = regexp.MustCompile(`(?i)(bacharel|graduação|universidade|faculdade)[^0-9]*(\d{4})`)
)

// roleRes is compiled once from roleKeywords; whole-word, case-insensitive.
var roleRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(roleKeywords))
	for i, kw := range roleKeywords {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return res
}()

// Signals derives the full read-only signal snapshot for a resume and an
// optional job description. Technologies come from the concatenated texts;
// prioritization partitions the resume's technologies by job-description
// membership.
func Signals(resumeText, jobDescription string) *types.ExtractedSignals {
	combined := resumeText
	if jobDescription != "" {
		combined = resumeText + " " + jobDescription
	}

	return &types.ExtractedSignals{
		Technologies:            Technologies(combined),
		PrioritizedTechnologies: PrioritizedTechnologies(resumeText, jobDescription),
		Roles:                   Roles(combined),
		YearsOfExperience:       YearsOfExperience(resumeText),
		ExperienceLines:         ExperienceLines(resumeText),
		Projects:                Projects(resumeText),
		Education:               Education(resumeText),
		Certifications:          Certifications(resumeText),
	}
}

// Sentences splits text into sentences after terminal punctuation. Empty
// segments are dropped; surrounding whitespace is trimmed.
func Sentences(text string) []string {
	var out []string
	start := 0
	for _, m := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		if seg := strings.TrimSpace(text[start : m[0]+1]); seg != "" {
			out = append(out, seg)
		}
		start = m[1]
	}
	if seg := strings.TrimSpace(text[start:]); seg != "" {
		out = append(out, seg)
	}
	return out
}

// Technologies returns every vocabulary entry present in the text as a
// case-insensitive substring, in vocabulary order, deduplicated.
func Technologies(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, tech := range knownTechnologies {
		if strings.Contains(lower, strings.ToLower(tech)) {
			found = append(found, tech)
		}
	}
	return found
}

// PrioritizedTechnologies reorders the resume's technologies so the subset
// also mentioned in the job description comes first. With an empty job
// description the resume order is returned unchanged.
func PrioritizedTechnologies(resumeText, jobDescription string) []string {
	resumeTechs := Technologies(resumeText)
	jobTechs := Technologies(jobDescription)

	inJob := make(map[string]bool, len(jobTechs))
	for _, t := range jobTechs {
		inJob[t] = true
	}

	out := make([]string, 0, len(resumeTechs))
	for _, t := range resumeTechs {
		if inJob[t] {
			out = append(out, t)
		}
	}
	for _, t := range resumeTechs {
		if !inJob[t] {
			out = append(out, t)
		}
	}
	return out
}

// Roles returns the role-title keywords mentioned in the text.
func Roles(text string) []string {
	var found []string
	for i, re := range roleRes {
		if re.MatchString(text) {
			found = append(found, roleKeywords[i])
		}
	}
	return found
}

// YearsOfExperience returns the first "N anos"/"N years" style match
// normalized to "N anos", or "" when the text states none. Callers supply
// their own default.
func YearsOfExperience(text string) string {
	m := yearsRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1] + " anos"
}

// ExperienceLines returns, in input order, the lines matching the
// "YYYY-YYYY:" period pattern.
func ExperienceLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if experienceLineRe.MatchString(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

// Education returns the first degree/institution keyword followed by a
// 4-digit year, or failing that the first line containing an education
// keyword. Empty when neither is present.
func Education(text string) string {
	if m := educationRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	for _, raw := range strings.Split(text, "\n") {
		lower := strings.ToLower(raw)
		for _, kw := range educationKeywords {
			if strings.Contains(lower, kw) {
				return strings.TrimSpace(raw)
			}
		}
	}
	return ""
}
