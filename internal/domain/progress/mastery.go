// Package progress folds immutable quiz history into the numbers the
// dashboard shows: per-concept mastery, study streaks, and overall stats.
// Every function takes its record set and any "now" explicitly, so results
// are deterministic for a given snapshot.
package progress

import (
	"math"
	"sort"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
)

// ConceptMastery is the pooled accuracy for one concept across every quiz
// and lecture the user has touched.
type ConceptMastery struct {
	Concept string
	Mastery int // rounded percentage, 0-100
	Correct int
	Total   int
}

// ComputeMastery groups answer records by concept (case-sensitive, no
// normalization) and returns one entry per concept with at least one recorded
// answer, sorted ascending by concept name.
func ComputeMastery(records []quiz.AnswerRecord) []ConceptMastery {
	type tally struct {
		correct int
		total   int
	}

	byConcept := make(map[string]*tally)
	for _, r := range records {
		t := byConcept[r.Concept]
		if t == nil {
			t = &tally{}
			byConcept[r.Concept] = t
		}
		t.total++
		if r.IsCorrect {
			t.correct++
		}
	}

	out := make([]ConceptMastery, 0, len(byConcept))
	for concept, t := range byConcept {
		out = append(out, ConceptMastery{
			Concept: concept,
			Mastery: roundPercent(t.correct, t.total),
			Correct: t.correct,
			Total:   t.total,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Concept < out[j].Concept })
	return out
}

// roundPercent rounds half up, e.g. 1/8 -> 13.
func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
