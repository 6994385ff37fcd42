package llm

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates no generation capability was configured at
// startup. This is a configuration condition, not a per-call failure; the
// pipeline routes it straight to the deterministic fallback.
var ErrUnavailable = errors.New("generation capability unavailable")

// GenerationError wraps a failure raised while invoking the generation
// capability. It is always caught at the pipeline boundary and converted
// into a fallback-path execution.
type GenerationError struct {
	Task  string
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for task %q: %v", e.Task, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
