package grader

import (
	"context"
	"errors"
	"testing"
)

type stubCompleter struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("no more canned responses")
}

func TestGradeShortAnswer_ParsesGrade(t *testing.T) {
	g := &LLMGrader{client: &stubCompleter{responses: []string{
		`{"score": 85, "feedback": "Good answer, minor gaps.", "isCorrect": true}`,
	}}}

	grade, err := g.GradeShortAnswer(context.Background(), "q", "expected", "user answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grade.Score != 85 || !grade.IsCorrect {
		t.Errorf("grade = %+v", grade)
	}
	if grade.Feedback == "" {
		t.Error("expected feedback")
	}
}

func TestGradeShortAnswer_ClampsScore(t *testing.T) {
	g := &LLMGrader{client: &stubCompleter{responses: []string{
		`{"score": 150, "feedback": "x", "isCorrect": true}`,
	}}}

	grade, err := g.GradeShortAnswer(context.Background(), "q", "e", "u")
	if err != nil {
		t.Fatal(err)
	}
	if grade.Score != 100 {
		t.Errorf("score = %d, want clamped 100", grade.Score)
	}
}

func TestGradeShortAnswer_RetriesThenFails(t *testing.T) {
	stub := &stubCompleter{responses: []string{"garbage", "more garbage"}}
	g := &LLMGrader{client: stub}

	_, err := g.GradeShortAnswer(context.Background(), "q", "e", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	var gradeErr *GradeError
	if !errors.As(err, &gradeErr) {
		t.Fatalf("expected GradeError, got %T", err)
	}
	if stub.calls != 2 {
		t.Errorf("calls = %d, want 2", stub.calls)
	}
}

func TestFallback(t *testing.T) {
	if g := Fallback("Photosynthesis", " photosynthesis "); !g.IsCorrect || g.Score != 100 {
		t.Errorf("matching answer got %+v", g)
	}
	if g := Fallback("Photosynthesis", "osmosis"); g.IsCorrect || g.Score != 0 {
		t.Errorf("wrong answer got %+v", g)
	}
}
