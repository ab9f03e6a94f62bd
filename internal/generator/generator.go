package generator

import (
	"context"
	"fmt"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
)

// Materials is everything the generation step produces for one lecture.
type Materials struct {
	Summary     string
	KeyConcepts []string
	Questions   []lecture.Question
}

// Generator turns raw lecture notes into study materials.
// Implementations may call an LLM or return canned results (for tests).
type Generator interface {
	Generate(ctx context.Context, title, content string) (*Materials, error)
}

// GenerateError is returned when generation fails, so callers can tell a bad
// model response apart from an unreachable endpoint via Unwrap.
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}
