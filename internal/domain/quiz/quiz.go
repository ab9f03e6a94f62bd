package quiz

import (
	"strings"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/id"
)

// AnswerRecord is one user's response to one question. It is immutable once
// stored: IsCorrect is fixed at submission time and never recomputed, even if
// the question's correct answer later changes.
type AnswerRecord struct {
	QuestionIndex int
	UserAnswer    string
	IsCorrect     bool
	Concept       string
}

// Result is one completed quiz submission. Created atomically at submission
// time, never mutated or deleted afterwards.
type Result struct {
	ID             string
	UserID         string
	LectureID      string
	QuizType       lecture.QuestionType
	Score          int
	TotalQuestions int
	Answers        []AnswerRecord
	CompletedAt    time.Time
}

// NewResult builds a quiz result from the recorded answers. Score and
// TotalQuestions are derived from the answers, one per question attempted.
func NewResult(userID, lectureID string, quizType lecture.QuestionType, answers []AnswerRecord, completedAt time.Time) *Result {
	score := 0
	for _, a := range answers {
		if a.IsCorrect {
			score++
		}
	}
	return &Result{
		ID:             id.GenerateID(),
		UserID:         userID,
		LectureID:      lectureID,
		QuizType:       quizType,
		Score:          score,
		TotalQuestions: len(answers),
		Answers:        answers,
		CompletedAt:    completedAt,
	}
}

// CheckAnswer is the deterministic grading rule: case-insensitive equality
// after trimming surrounding whitespace. Used for MCQ and fill-in-the-blank
// answers, and as the fallback when the short-answer grader is unavailable.
func CheckAnswer(userAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
}
