package lecture

import (
	"errors"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/id"
)

// Status is the lifecycle state of a lecture.
type Status string

const (
	StatusProcessing Status = "processing" // generation in flight
	StatusReady      Status = "ready"
	StatusError      Status = "error"
)

// QuestionType distinguishes the three quiz formats generated per lecture.
type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeFillBlank   QuestionType = "fill-blank"
	TypeShortAnswer QuestionType = "short-answer"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	return t == TypeMCQ || t == TypeFillBlank || t == TypeShortAnswer
}

// Question is one generated quiz question. Options is populated for MCQ only.
type Question struct {
	Type          QuestionType
	Question      string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Concept       string
}

// Lecture is a pasted set of notes plus the study materials generated from it.
// Summary, KeyConcepts and Questions are populated iff Status is ready.
type Lecture struct {
	ID          string
	UserID      string
	Title       string
	Content     string
	Status      Status
	Summary     string
	KeyConcepts []string
	Questions   []Question
	CreatedAt   time.Time

	// NextReviewDate is set after the first quiz submission and overwritten
	// on every subsequent one; the most recent quiz always wins.
	NextReviewDate *time.Time
	LastStudied    *time.Time
}

// New creates a lecture in the processing state.
func New(userID, title, content string) (*Lecture, error) {
	if title == "" {
		return nil, errors.New("lecture title cannot be empty")
	}
	if content == "" {
		return nil, errors.New("lecture content cannot be empty")
	}
	return &Lecture{
		ID:        id.GenerateID(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Status:    StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// MarkReady attaches generated study materials and transitions to ready.
func (l *Lecture) MarkReady(summary string, keyConcepts []string, questions []Question) error {
	if summary == "" {
		return errors.New("generated summary cannot be empty")
	}
	if len(questions) == 0 {
		return errors.New("generated lecture must contain at least one question")
	}
	l.Summary = summary
	l.KeyConcepts = keyConcepts
	l.Questions = questions
	l.Status = StatusReady
	return nil
}

// MarkError transitions to the error state, clearing any partial materials.
func (l *Lecture) MarkError() {
	l.Summary = ""
	l.KeyConcepts = nil
	l.Questions = nil
	l.Status = StatusError
}

// QuestionsOfType returns the questions of the given type in generated order.
func (l *Lecture) QuestionsOfType(t QuestionType) []Question {
	var out []Question
	for _, q := range l.Questions {
		if q.Type == t {
			out = append(out, q)
		}
	}
	return out
}

// DueForReview reports whether the lecture is ready and its scheduled review
// date has passed. Lectures never quizzed have no review date and are not due.
func (l *Lecture) DueForReview(now time.Time) bool {
	if l.Status != StatusReady || l.NextReviewDate == nil {
		return false
	}
	return !l.NextReviewDate.After(now)
}
