// Package types provides type definitions for structured data used throughout the job application assistant.
package types

// ExtractedSignals is a read-only snapshot of the structured information
// pulled out of a resume (and, when supplied, a job description). It is a
// pure function of its input text: extracting twice from the same text
// yields identical signals.
type ExtractedSignals struct {
	// Technologies found in the combined resume + job description text,
	// in vocabulary order, deduplicated.
	Technologies []string `json:"technologies"`

	// PrioritizedTechnologies reorders Technologies so that entries also
	// present in the job description come first. This ordering drives
	// which skills are emphasized downstream.
	PrioritizedTechnologies []string `json:"prioritized_technologies"`

	// Roles holds role-title keywords mentioned in the text.
	Roles []string `json:"roles"`

	// YearsOfExperience is the first "N anos"/"N years" match, or empty
	// when the text does not state one. Callers supply their own default.
	YearsOfExperience string `json:"years_of_experience,omitempty"`

	// ExperienceLines are lines matching the "YYYY-YYYY:" period pattern,
	// in input order.
	ExperienceLines []string `json:"experience_lines,omitempty"`

	// Projects holds up to three bullet entries from the projects section.
	Projects []string `json:"projects,omitempty"`

	// Education is the first degree/institution match, or empty.
	Education string `json:"education,omitempty"`

	// Certifications holds bullet entries from the certifications section.
	Certifications []string `json:"certifications,omitempty"`
}

// QAItem is a single question/answer pair in a mock interview.
type QAItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
