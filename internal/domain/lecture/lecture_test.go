package lecture_test

import (
	"testing"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
)

func sampleQuestions() []lecture.Question {
	return []lecture.Question{
		{Type: lecture.TypeMCQ, Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a", Concept: "X"},
		{Type: lecture.TypeFillBlank, Question: "q2", CorrectAnswer: "b", Concept: "X"},
		{Type: lecture.TypeMCQ, Question: "q3", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "c", Concept: "Y"},
		{Type: lecture.TypeShortAnswer, Question: "q4", CorrectAnswer: "d", Concept: "Y"},
	}
}

func TestNew_StartsProcessing(t *testing.T) {
	lec, err := lecture.New("user-1", "Biology 101", "cells are small")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lec.Status != lecture.StatusProcessing {
		t.Errorf("status = %s, want processing", lec.Status)
	}
	if lec.Summary != "" || lec.Questions != nil || lec.KeyConcepts != nil {
		t.Error("new lecture must not carry generated materials")
	}
	if lec.NextReviewDate != nil {
		t.Error("new lecture must not have a review date")
	}
	if lec.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestNew_RejectsEmptyFields(t *testing.T) {
	if _, err := lecture.New("user-1", "", "content"); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := lecture.New("user-1", "title", ""); err == nil {
		t.Error("expected error for empty content")
	}
}

func TestMarkReady(t *testing.T) {
	lec, _ := lecture.New("user-1", "Biology 101", "cells are small")

	err := lec.MarkReady("a summary", []string{"X", "Y"}, sampleQuestions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lec.Status != lecture.StatusReady {
		t.Errorf("status = %s, want ready", lec.Status)
	}
	if lec.Summary == "" || len(lec.Questions) == 0 || len(lec.KeyConcepts) == 0 {
		t.Error("ready lecture must carry all generated materials")
	}
}

func TestMarkReady_RequiresMaterials(t *testing.T) {
	lec, _ := lecture.New("user-1", "t", "c")

	if err := lec.MarkReady("", nil, sampleQuestions()); err == nil {
		t.Error("expected error for empty summary")
	}
	if err := lec.MarkReady("summary", nil, nil); err == nil {
		t.Error("expected error for no questions")
	}
}

func TestMarkError_ClearsPartialMaterials(t *testing.T) {
	lec, _ := lecture.New("user-1", "t", "c")
	lec.Summary = "partial"

	lec.MarkError()

	if lec.Status != lecture.StatusError {
		t.Errorf("status = %s, want error", lec.Status)
	}
	if lec.Summary != "" {
		t.Error("error lecture must not carry generated materials")
	}
}

func TestQuestionsOfType(t *testing.T) {
	lec, _ := lecture.New("user-1", "t", "c")
	if err := lec.MarkReady("s", []string{"X"}, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	mcq := lec.QuestionsOfType(lecture.TypeMCQ)
	if len(mcq) != 2 {
		t.Errorf("mcq count = %d, want 2", len(mcq))
	}
	if mcq[0].Question != "q1" || mcq[1].Question != "q3" {
		t.Error("questions must keep generated order")
	}

	if n := len(lec.QuestionsOfType(lecture.TypeShortAnswer)); n != 1 {
		t.Errorf("short-answer count = %d, want 1", n)
	}
}

func TestDueForReview(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	lec, _ := lecture.New("user-1", "t", "c")
	if lec.DueForReview(now) {
		t.Error("processing lecture with no review date must not be due")
	}

	lec.MarkReady("s", nil, sampleQuestions())
	if lec.DueForReview(now) {
		t.Error("never-quizzed lecture must not be due")
	}

	lec.NextReviewDate = &past
	if !lec.DueForReview(now) {
		t.Error("lecture past its review date must be due")
	}

	lec.NextReviewDate = &future
	if lec.DueForReview(now) {
		t.Error("lecture before its review date must not be due")
	}

	lec.NextReviewDate = &now
	if !lec.DueForReview(now) {
		t.Error("review date exactly now must count as due")
	}
}

func TestQuestionTypeValid(t *testing.T) {
	for _, valid := range []lecture.QuestionType{lecture.TypeMCQ, lecture.TypeFillBlank, lecture.TypeShortAnswer} {
		if !valid.Valid() {
			t.Errorf("%s should be valid", valid)
		}
	}
	if lecture.QuestionType("essay").Valid() {
		t.Error("unknown type should be invalid")
	}
}
