package progress

import (
	"math"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
)

// minutesPerQuestion is the fixed study-time estimate; HoursStudied is not
// measured wall-clock time.
const minutesPerQuestion = 2

// OverallStats are the dashboard summary counters.
type OverallStats struct {
	TotalQuizzes   int
	AverageScore   int // rounded mean of per-quiz percentages
	TotalLectures  int
	HoursStudied   float64 // one decimal place
	TotalQuestions int
}

// ComputeOverallStats folds every quiz result into summary counters.
// AverageScore is deliberately the mean of per-quiz percentages, not pooled
// correct/total, so short quizzes weigh the same as long ones; mastery uses
// the pooled ratio instead. The two must not be unified.
func ComputeOverallStats(results []*quiz.Result, lectureCount int) OverallStats {
	if len(results) == 0 {
		return OverallStats{TotalLectures: lectureCount}
	}

	sumPct := 0.0
	totalQuestions := 0
	for _, r := range results {
		sumPct += float64(r.Score) / float64(r.TotalQuestions) * 100
		totalQuestions += r.TotalQuestions
	}

	hours := float64(totalQuestions*minutesPerQuestion) / 60
	return OverallStats{
		TotalQuizzes:   len(results),
		AverageScore:   int(math.Round(sumPct / float64(len(results)))),
		TotalLectures:  lectureCount,
		HoursStudied:   math.Round(hours*10) / 10,
		TotalQuestions: totalQuestions,
	}
}

// LectureStats summarizes the quiz history of a single lecture.
type LectureStats struct {
	TotalQuizzes int
	AverageScore int
	LastStudied  time.Time
}

// ComputeLectureStats folds one lecture's results; nil when none exist.
func ComputeLectureStats(results []*quiz.Result) *LectureStats {
	if len(results) == 0 {
		return nil
	}

	sumPct := 0.0
	var last time.Time
	for _, r := range results {
		sumPct += float64(r.Score) / float64(r.TotalQuestions) * 100
		if r.CompletedAt.After(last) {
			last = r.CompletedAt
		}
	}

	return &LectureStats{
		TotalQuizzes: len(results),
		AverageScore: int(math.Round(sumPct / float64(len(results)))),
		LastStudied:  last,
	}
}
