package extract

import "strings"

const bulletMarker = "- "

// sectionScanner captures bulleted lines inside one named section of a
// line-oriented document. It is a two-state machine: outside the section
// until enter matches a line, inside until exit matches one. Keeping the
// entry/exit predicates explicit makes the boundary rules independently
// testable and stops unrelated content from bleeding into the list.
type sectionScanner struct {
	// enter reports whether a line opens the section.
	enter func(line string) bool
	// accept reports whether a line inside the section should be captured.
	// Captured lines have the bullet marker stripped.
	accept func(line string) bool
	// exit reports whether a line inside the section closes it.
	exit func(line string) bool
}

func (s *sectionScanner) scan(text string) []string {
	inside := false
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !inside {
			inside = s.enter(line)
			continue
		}
		switch {
		case s.accept(line):
			out = append(out, strings.TrimPrefix(line, bulletMarker))
		case s.exit(line):
			inside = false
		}
	}
	return out
}

var projectScanner = &sectionScanner{
	enter: func(line string) bool {
		lower := strings.ToLower(line)
		return strings.Contains(lower, "projeto") && strings.Contains(lower, "relevante")
	},
	// Project bullets carry a "name: description" shape; bullets without a
	// colon are ignored but do not end the section.
	accept: func(line string) bool {
		return strings.HasPrefix(line, bulletMarker) && strings.Contains(line, ":")
	},
	// Any non-bulleted, non-empty line (the next section heading included)
	// ends the projects section.
	exit: func(line string) bool {
		return line != "" && !strings.HasPrefix(line, bulletMarker)
	},
}

var certificationScanner = &sectionScanner{
	enter: func(line string) bool {
		return strings.Contains(strings.ToLower(line), "certificaç")
	},
	accept: func(line string) bool {
		return strings.HasPrefix(line, bulletMarker)
	},
	exit: func(line string) bool {
		return line != ""
	},
}

// maxProjects bounds how many project bullets downstream consumers see.
const maxProjects = 3

// Projects returns up to three "name: description" bullets from the
// relevant-projects section, in input order.
func Projects(text string) []string {
	projects := projectScanner.scan(text)
	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}
	return projects
}

// Certifications returns the bullets of the certifications section, in
// input order.
func Certifications(text string) []string {
	return certificationScanner.scan(text)
}
