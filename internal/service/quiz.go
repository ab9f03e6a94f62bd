package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/review"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/grader"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/store"
)

var (
	ErrLectureNotReady = errors.New("lecture is not ready for quizzing")
	ErrUnknownQuizType = errors.New("unknown quiz type")
	ErrNoQuestions     = errors.New("lecture has no questions of this type")
	ErrAnswerCount     = errors.New("answer count does not match question count")
)

// SubmittedAnswer is one raw answer as received from the client, positional
// against the question sequence of the chosen quiz type.
type SubmittedAnswer struct {
	QuestionIndex int
	Answer        string
}

// AnswerOutcome is what the client sees for each graded answer.
type AnswerOutcome struct {
	QuestionIndex int
	IsCorrect     bool
	CorrectAnswer string
	Explanation   string
	Feedback      string // short-answer only
}

// Submission is the full outcome of a quiz submission.
type Submission struct {
	Result     *quiz.Result
	Outcomes   []AnswerOutcome
	NextReview time.Time
}

// QuizService checks and grades quiz submissions, persists the immutable
// result, and updates the owning lecture's review schedule.
type QuizService struct {
	store  store.Store
	grader grader.Grader
	logger *slog.Logger
	now    func() time.Time
}

// NewQuizService creates a QuizService. now is injectable for tests; pass
// nil to use the wall clock.
func NewQuizService(s store.Store, g grader.Grader, logger *slog.Logger, now func() time.Time) *QuizService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &QuizService{
		store:  s,
		grader: g,
		logger: logger,
		now:    now,
	}
}

// Submit grades one quiz attempt. Answers must cover every question of the
// chosen type, in order. The result and the lecture's schedule patch are
// stored as one atomic unit.
func (qs *QuizService) Submit(ctx context.Context, userID, lectureID string, quizType lecture.QuestionType, answers []SubmittedAnswer) (*Submission, error) {
	if !quizType.Valid() {
		return nil, ErrUnknownQuizType
	}

	lec, err := qs.store.GetLecture(ctx, userID, lectureID)
	if err != nil {
		return nil, err
	}
	if lec.Status != lecture.StatusReady {
		return nil, ErrLectureNotReady
	}

	questions := lec.QuestionsOfType(quizType)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCount, len(answers), len(questions))
	}

	records := make([]quiz.AnswerRecord, len(questions))
	outcomes := make([]AnswerOutcome, len(questions))
	seen := make([]bool, len(questions))
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(questions) {
			return nil, fmt.Errorf("%w: question index %d out of range", ErrAnswerCount, a.QuestionIndex)
		}
		if seen[a.QuestionIndex] {
			return nil, fmt.Errorf("%w: duplicate answer for question %d", ErrAnswerCount, a.QuestionIndex)
		}
		seen[a.QuestionIndex] = true
		q := questions[a.QuestionIndex]

		correct, feedback := qs.checkAnswer(ctx, q, a.Answer)
		records[a.QuestionIndex] = quiz.AnswerRecord{
			QuestionIndex: a.QuestionIndex,
			UserAnswer:    a.Answer,
			IsCorrect:     correct,
			Concept:       q.Concept,
		}
		outcomes[a.QuestionIndex] = AnswerOutcome{
			QuestionIndex: a.QuestionIndex,
			IsCorrect:     correct,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Feedback:      feedback,
		}
	}

	completedAt := qs.now()
	result := quiz.NewResult(userID, lectureID, quizType, records, completedAt)

	nextReview, err := review.ComputeNextReview(result.Score, result.TotalQuestions, completedAt)
	if err != nil {
		return nil, err
	}

	if err := qs.store.SaveQuizResult(ctx, result, nextReview); err != nil {
		return nil, err
	}

	qs.logger.Info("quiz submitted",
		"user_id", userID,
		"lecture_id", lectureID,
		"quiz_type", string(quizType),
		"score", result.Score,
		"total", result.TotalQuestions,
	)

	return &Submission{
		Result:     result,
		Outcomes:   outcomes,
		NextReview: nextReview,
	}, nil
}

// checkAnswer applies the per-type grading rule. Short answers go to the AI
// grader; any grader failure falls back to the deterministic string match and
// is never surfaced to the user.
func (qs *QuizService) checkAnswer(ctx context.Context, q lecture.Question, answer string) (isCorrect bool, feedback string) {
	if q.Type != lecture.TypeShortAnswer {
		return quiz.CheckAnswer(answer, q.CorrectAnswer), ""
	}

	grade, err := qs.grader.GradeShortAnswer(ctx, q.Question, q.CorrectAnswer, answer)
	if err != nil {
		qs.logger.Warn("grader unavailable, using exact-match fallback", "concept", q.Concept, "error", err)
		grade = grader.Fallback(q.CorrectAnswer, answer)
	}
	return grade.IsCorrect, grade.Feedback
}
