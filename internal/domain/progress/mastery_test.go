package progress_test

import (
	"reflect"
	"testing"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/progress"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
)

func record(concept string, correct bool) quiz.AnswerRecord {
	return quiz.AnswerRecord{Concept: concept, IsCorrect: correct}
}

func TestComputeMastery_PooledRatio(t *testing.T) {
	records := []quiz.AnswerRecord{
		record("X", true),
		record("X", true),
		record("X", true),
		record("X", false),
	}

	got := progress.ComputeMastery(records)
	want := []progress.ConceptMastery{
		{Concept: "X", Mastery: 75, Correct: 3, Total: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestComputeMastery_SortedByConcept(t *testing.T) {
	records := []quiz.AnswerRecord{
		record("Osmosis", true),
		record("Chlorophyll", false),
		record("Photosynthesis", true),
		record("Chlorophyll", true),
	}

	got := progress.ComputeMastery(records)
	order := make([]string, len(got))
	for i, m := range got {
		order[i] = m.Concept
	}

	want := []string{"Chlorophyll", "Osmosis", "Photosynthesis"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("concept order = %v, want %v", order, want)
	}
}

func TestComputeMastery_CaseSensitiveGrouping(t *testing.T) {
	records := []quiz.AnswerRecord{
		record("photosynthesis", true),
		record("Photosynthesis", false),
	}

	got := progress.ComputeMastery(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct concepts, got %d: %+v", len(got), got)
	}
}

func TestComputeMastery_RoundsHalfUp(t *testing.T) {
	// 1 of 8 correct = 12.5% -> 13
	records := []quiz.AnswerRecord{
		record("X", true),
		record("X", false), record("X", false), record("X", false),
		record("X", false), record("X", false), record("X", false),
		record("X", false),
	}

	got := progress.ComputeMastery(records)
	if got[0].Mastery != 13 {
		t.Errorf("mastery = %d, want 13", got[0].Mastery)
	}
}

func TestComputeMastery_Empty(t *testing.T) {
	got := progress.ComputeMastery(nil)
	if len(got) != 0 {
		t.Errorf("expected no entries for empty input, got %+v", got)
	}
}

func TestComputeMastery_Idempotent(t *testing.T) {
	records := []quiz.AnswerRecord{
		record("A", true),
		record("B", false),
		record("A", false),
	}

	first := progress.ComputeMastery(records)
	second := progress.ComputeMastery(records)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ: %+v vs %+v", first, second)
	}
}
