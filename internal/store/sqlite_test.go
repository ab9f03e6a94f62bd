package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newLecture(t *testing.T, userID string) *lecture.Lecture {
	t.Helper()
	lec, err := lecture.New(userID, "Photosynthesis", "plants turn light into sugar")
	if err != nil {
		t.Fatal(err)
	}
	return lec
}

func sampleQuestions() []lecture.Question {
	return []lecture.Question{
		{Type: lecture.TypeMCQ, Question: "What pigment absorbs light?", Options: []string{"chlorophyll", "keratin", "melanin", "hemoglobin"}, CorrectAnswer: "chlorophyll", Explanation: "chlorophyll absorbs red and blue light", Concept: "Pigments"},
		{Type: lecture.TypeFillBlank, Question: "Photosynthesis happens in the ___", CorrectAnswer: "chloroplast", Explanation: "the chloroplast hosts the light reactions", Concept: "Organelles"},
	}
}

func TestSaveAndGetLecture(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	lec := newLecture(t, "user-1")
	if err := s.SaveLecture(ctx, lec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetLecture(ctx, "user-1", lec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != lec.Title || got.Content != lec.Content || got.Status != lecture.StatusProcessing {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(lec.CreatedAt.Truncate(time.Millisecond)) {
		t.Errorf("created_at %v, want %v", got.CreatedAt, lec.CreatedAt)
	}
	if got.NextReviewDate != nil || got.LastStudied != nil {
		t.Error("new lecture must have no review schedule")
	}
	if got.Questions != nil || got.KeyConcepts != nil {
		t.Error("new lecture must have no generated material")
	}
}

func TestGetLecture_ScopedToOwner(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	lec := newLecture(t, "user-1")
	if err := s.SaveLecture(ctx, lec); err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetLecture(ctx, "user-2", lec.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("foreign user got %v, want ErrNotFound", err)
	}
	if _, err := s.GetLecture(ctx, "user-1", "no-such-id"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing id got %v, want ErrNotFound", err)
	}
}

func TestMarkLectureReady_RoundTripsMaterial(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	lec := newLecture(t, "user-1")
	if err := s.SaveLecture(ctx, lec); err != nil {
		t.Fatal(err)
	}

	questions := sampleQuestions()
	concepts := []string{"Pigments", "Organelles"}
	if err := s.MarkLectureReady(ctx, lec.ID, "Plants make sugar from light.", concepts, questions); err != nil {
		t.Fatalf("mark ready: %v", err)
	}

	got, err := s.GetLecture(ctx, "user-1", lec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != lecture.StatusReady {
		t.Errorf("status = %s, want ready", got.Status)
	}
	if got.Summary != "Plants make sugar from light." {
		t.Errorf("summary = %q", got.Summary)
	}
	if !reflect.DeepEqual(got.KeyConcepts, concepts) {
		t.Errorf("key concepts = %v, want %v", got.KeyConcepts, concepts)
	}
	if !reflect.DeepEqual(got.Questions, questions) {
		t.Errorf("questions = %+v, want %+v", got.Questions, questions)
	}
}

func TestMarkLectureError_ClearsMaterial(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	lec := newLecture(t, "user-1")
	if err := s.SaveLecture(ctx, lec); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkLectureReady(ctx, lec.ID, "summary", []string{"A"}, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	if err := s.MarkLectureError(ctx, lec.ID); err != nil {
		t.Fatalf("mark error: %v", err)
	}

	got, err := s.GetLecture(ctx, "user-1", lec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != lecture.StatusError {
		t.Errorf("status = %s, want error", got.Status)
	}
	if got.Summary != "" || got.KeyConcepts != nil || got.Questions != nil {
		t.Errorf("material not cleared: %+v", got)
	}
}

func TestMarkLecture_MissingID(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := s.MarkLectureReady(ctx, "ghost", "s", []string{"A"}, sampleQuestions()); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("mark ready: got %v, want ErrNotFound", err)
	}
	if err := s.MarkLectureError(ctx, "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("mark error: got %v, want ErrNotFound", err)
	}
}

func TestListLectures_NewestFirst(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	older := newLecture(t, "user-1")
	older.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	newer := newLecture(t, "user-1")
	newer.CreatedAt = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	other := newLecture(t, "user-2")

	for _, lec := range []*lecture.Lecture{older, newer, other} {
		if err := s.SaveLecture(ctx, lec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListLectures(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lectures, want 2", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("order = [%s %s], want newest first", got[0].ID, got[1].ID)
	}
}

func TestSaveQuizResult_PatchesSchedule(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	lec := newLecture(t, "user-1")
	if err := s.SaveLecture(ctx, lec); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkLectureReady(ctx, lec.ID, "summary", []string{"Pigments"}, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	completedAt := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	nextReview := completedAt.Add(3 * 24 * time.Hour)
	answers := []quiz.AnswerRecord{
		{QuestionIndex: 0, UserAnswer: "chlorophyll", IsCorrect: true, Concept: "Pigments"},
		{QuestionIndex: 1, UserAnswer: "nucleus", IsCorrect: false, Concept: "Organelles"},
	}
	res := quiz.NewResult("user-1", lec.ID, lecture.TypeMCQ, answers, completedAt)

	if err := s.SaveQuizResult(ctx, res, nextReview); err != nil {
		t.Fatalf("save result: %v", err)
	}

	got, err := s.GetLecture(ctx, "user-1", lec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.NextReviewDate == nil || !got.NextReviewDate.Equal(nextReview) {
		t.Errorf("next review = %v, want %v", got.NextReviewDate, nextReview)
	}
	if got.LastStudied == nil || !got.LastStudied.Equal(completedAt) {
		t.Errorf("last studied = %v, want %v", got.LastStudied, completedAt)
	}

	results, err := s.ListResultsByLecture(ctx, "user-1", lec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score != 1 || results[0].TotalQuestions != 2 {
		t.Errorf("score %d/%d, want 1/2", results[0].Score, results[0].TotalQuestions)
	}
	if !reflect.DeepEqual(results[0].Answers, answers) {
		t.Errorf("answers = %+v, want %+v", results[0].Answers, answers)
	}
	if !results[0].CompletedAt.Equal(completedAt) {
		t.Errorf("completed at = %v, want %v", results[0].CompletedAt, completedAt)
	}
}

func TestSaveQuizResult_MissingLectureRollsBack(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	answers := []quiz.AnswerRecord{{QuestionIndex: 0, UserAnswer: "x", IsCorrect: false, Concept: "A"}}
	res := quiz.NewResult("user-1", "ghost", lecture.TypeMCQ, answers, time.Now().UTC())

	if err := s.SaveQuizResult(ctx, res, time.Now().Add(24*time.Hour)); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	results, err := s.ListResultsByUser(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("rolled-back result is visible: %+v", results)
	}
}

func TestListDueLectures(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	save := func(lec *lecture.Lecture) {
		t.Helper()
		if err := s.SaveLecture(ctx, lec); err != nil {
			t.Fatal(err)
		}
	}

	due := newLecture(t, "user-1")
	due.Status = lecture.StatusReady
	dueAt := now.Add(-time.Hour)
	due.NextReviewDate = &dueAt
	save(due)

	future := newLecture(t, "user-1")
	future.Status = lecture.StatusReady
	futureAt := now.Add(48 * time.Hour)
	future.NextReviewDate = &futureAt
	save(future)

	unscheduled := newLecture(t, "user-1")
	unscheduled.Status = lecture.StatusReady
	save(unscheduled)

	processing := newLecture(t, "user-1")
	processing.NextReviewDate = &dueAt
	save(processing)

	got, err := s.ListDueLectures(ctx, "user-1", now)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != due.ID {
		t.Errorf("due = %+v, want only %s", got, due.ID)
	}
}

func TestDeleteLecture_CascadesToQuizHistory(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	lec := newLecture(t, "user-1")
	if err := s.SaveLecture(ctx, lec); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkLectureReady(ctx, lec.ID, "summary", []string{"A"}, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	answers := []quiz.AnswerRecord{{QuestionIndex: 0, UserAnswer: "chlorophyll", IsCorrect: true, Concept: "Pigments"}}
	res := quiz.NewResult("user-1", lec.ID, lecture.TypeMCQ, answers, time.Now().UTC())
	if err := s.SaveQuizResult(ctx, res, time.Now().Add(24*time.Hour)); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteLecture(ctx, "user-1", lec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.GetLecture(ctx, "user-1", lec.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("lecture still present: %v", err)
	}
	results, err := s.ListResultsByUser(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("quiz history survived the delete: %+v", results)
	}
}

func TestDeleteLecture_ScopedToOwner(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	lec := newLecture(t, "user-1")
	if err := s.SaveLecture(ctx, lec); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteLecture(ctx, "user-2", lec.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("foreign delete got %v, want ErrNotFound", err)
	}
	if _, err := s.GetLecture(ctx, "user-1", lec.ID); err != nil {
		t.Errorf("lecture should survive a foreign delete: %v", err)
	}
}

func TestCountLectures(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.SaveLecture(ctx, newLecture(t, "user-1")); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SaveLecture(ctx, newLecture(t, "user-2")); err != nil {
		t.Fatal(err)
	}

	n, err := s.CountLectures(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}
