package store

import (
	"context"
	"errors"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence boundary. Every read is scoped to the acting
// user; the user is never inferred from content.
type Store interface {
	// Lectures
	SaveLecture(ctx context.Context, lec *lecture.Lecture) error
	GetLecture(ctx context.Context, userID, lectureID string) (*lecture.Lecture, error)
	ListLectures(ctx context.Context, userID string) ([]*lecture.Lecture, error)
	ListDueLectures(ctx context.Context, userID string, now time.Time) ([]*lecture.Lecture, error)
	CountLectures(ctx context.Context, userID string) (int, error)
	DeleteLecture(ctx context.Context, userID, lectureID string) error

	// Generation outcomes. Keyed by lecture ID alone: these are written by
	// the background worker on behalf of the lecture's owner.
	MarkLectureReady(ctx context.Context, lectureID, summary string, keyConcepts []string, questions []lecture.Question) error
	MarkLectureError(ctx context.Context, lectureID string) error

	// Quiz results. SaveQuizResult persists the result and patches the
	// owning lecture's review schedule in one transaction, so a reader never
	// observes one without the other.
	SaveQuizResult(ctx context.Context, res *quiz.Result, nextReview time.Time) error
	ListResultsByUser(ctx context.Context, userID string) ([]*quiz.Result, error)
	ListResultsByLecture(ctx context.Context, userID, lectureID string) ([]*quiz.Result, error)

	Close() error
}
