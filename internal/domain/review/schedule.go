package review

import (
	"errors"
	"time"
)

// ErrInvalidTotal is returned when a schedule is requested for a quiz with no
// questions. Callers must never submit a zero-question quiz.
var ErrInvalidTotal = errors.New("review: total questions must be positive")

// Day offsets per score band. Below 60% schedules the same as the 60-79 band:
// even a failing quiz gets reviewed tomorrow, not today.
const (
	daysHigh = 7 // >= 90%
	daysMid  = 3 // >= 80%
	daysLow  = 1
)

// ComputeNextReview maps a quiz score to the next spaced-repetition review
// date. The percentage is compared unrounded, bands evaluated high to low.
// No jitter, no cap, no floor beyond now itself.
func ComputeNextReview(score, totalQuestions int, now time.Time) (time.Time, error) {
	if totalQuestions <= 0 {
		return time.Time{}, ErrInvalidTotal
	}

	pct := float64(score) / float64(totalQuestions) * 100

	days := daysLow
	switch {
	case pct >= 90:
		days = daysHigh
	case pct >= 80:
		days = daysMid
	}

	return now.Add(time.Duration(days) * 24 * time.Hour), nil
}
