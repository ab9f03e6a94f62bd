package grader

import (
	"context"
	"fmt"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
)

// Grade is the outcome of grading one short answer.
type Grade struct {
	Score     int // 0-100
	Feedback  string
	IsCorrect bool
}

// Grader grades a short answer against the expected answer.
// Implementations may call an LLM or return canned results (for tests).
type Grader interface {
	GradeShortAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (*Grade, error)
}

// Fallback is the deterministic grade used when the grader is unavailable:
// exact match after trimming and case-folding, all or nothing.
func Fallback(correctAnswer, userAnswer string) *Grade {
	if quiz.CheckAnswer(userAnswer, correctAnswer) {
		return &Grade{
			Score:     100,
			Feedback:  "Your answer matches the expected response.",
			IsCorrect: true,
		}
	}
	return &Grade{
		Score:     0,
		Feedback:  "Your answer doesn't match the expected response. Please review the material.",
		IsCorrect: false,
	}
}

// GradeError distinguishes "model returned a bad grade" from "model was
// unreachable" via Unwrap.
type GradeError struct {
	Reason  string
	Wrapped error
}

func (e *GradeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("grading failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("grading failed: %s", e.Reason)
}

func (e *GradeError) Unwrap() error {
	return e.Wrapped
}
