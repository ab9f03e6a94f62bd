package progress

import (
	"sort"
	"time"
)

// activityWindowDays is the fixed size of the calendar-heatmap window.
const activityWindowDays = 180

// DayActivity is one heatmap cell: a UTC calendar day and how many quizzes
// were completed on it.
type DayActivity struct {
	Date  string // YYYY-MM-DD
	Count int
}

// Streak summarizes quiz-completion regularity.
type Streak struct {
	CurrentStreak int
	LongestStreak int
	DailyActivity []DayActivity
}

// ComputeStreak buckets completion timestamps into UTC calendar days and
// derives the current streak, the longest streak ever, and a fixed 180-day
// activity window ending today.
//
// The current streak tolerates an inactive "today": taking no quiz today does
// not break an otherwise continuous run, it just does not extend it. A gap on
// any earlier day ends the walk. With no completions at all, everything comes
// back zero and DailyActivity is empty rather than a zero-filled window;
// callers branch on the empty case.
func ComputeStreak(completions []time.Time, now time.Time) Streak {
	if len(completions) == 0 {
		return Streak{}
	}

	perDay := make(map[string]int)
	for _, ts := range completions {
		perDay[dayKey(ts)]++
	}

	today := truncateDay(now)

	// Current streak: walk back from today. An inactive today (step 0) is
	// skipped without breaking; the first inactive day after that ends it.
	current := 0
	for day, step := today, 0; ; step++ {
		if perDay[dayKey(day)] > 0 {
			current++
		} else if step > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}

	// Longest streak: longest run of consecutive active days.
	activeDays := make([]time.Time, 0, len(perDay))
	for key := range perDay {
		d, _ := time.ParseInLocation(dayLayout, key, time.UTC)
		activeDays = append(activeDays, d)
	}
	sort.Slice(activeDays, func(i, j int) bool { return activeDays[i].After(activeDays[j]) })

	longest, run := 0, 0
	for i, d := range activeDays {
		if i == 0 || activeDays[i-1].Sub(d) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Fixed window: the 179 days before today through today, zero-filled.
	activity := make([]DayActivity, activityWindowDays)
	start := today.AddDate(0, 0, -(activityWindowDays - 1))
	for i := range activity {
		key := dayKey(start.AddDate(0, 0, i))
		activity[i] = DayActivity{Date: key, Count: perDay[key]}
	}

	return Streak{
		CurrentStreak: current,
		LongestStreak: longest,
		DailyActivity: activity,
	}
}

const dayLayout = "2006-01-02"

func dayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
