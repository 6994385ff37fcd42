package pipeline

import "context"

// attempt tries one generation strategy for a document. The boolean reports
// whether a usable document was produced; false routes the cascade to the
// next strategy.
type attempt func(ctx context.Context) (string, bool)

// runCascade evaluates strategies first-to-success. Callers place a
// strategy that cannot fail at the end of the list, so the cascade always
// yields a document.
func runCascade(ctx context.Context, attempts ...attempt) string {
	for _, a := range attempts {
		if doc, ok := a(ctx); ok {
			return doc
		}
	}
	return ""
}
