package api

import (
	"net/http"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/progress"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
)

// ── Response types ──────────────────────────────────────────────────────────

type ConceptMasteryResponse struct {
	Concept string `json:"concept"`
	Mastery int    `json:"mastery"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

type DayActivityResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StreakResponse struct {
	CurrentStreak int                   `json:"current_streak"`
	LongestStreak int                   `json:"longest_streak"`
	DailyActivity []DayActivityResponse `json:"daily_activity"`
}

type OverallStatsResponse struct {
	TotalQuizzes   int     `json:"total_quizzes"`
	AverageScore   int     `json:"average_score"`
	TotalLectures  int     `json:"total_lectures"`
	HoursStudied   float64 `json:"hours_studied"`
	TotalQuestions int     `json:"total_questions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getMastery aggregates answer history into per-concept mastery.
// @Summary      Concept mastery
// @Description  Folds every recorded answer into per-concept mastery percentages, sorted by concept name.
// @Tags         Progress
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Success      200        {array}   ConceptMasteryResponse
// @Failure      500        {object}  map[string]string
// @Router       /progress/mastery [get]
func (h *Handler) getMastery(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	results, err := h.store.ListResultsByUser(r.Context(), uid)
	if h.handleStoreError(w, err, "results") {
		return
	}

	var records []quiz.AnswerRecord
	for _, res := range results {
		records = append(records, res.Answers...)
	}

	mastery := progress.ComputeMastery(records)
	response := make([]ConceptMasteryResponse, len(mastery))
	for i, m := range mastery {
		response[i] = ConceptMasteryResponse{
			Concept: m.Concept,
			Mastery: m.Mastery,
			Correct: m.Correct,
			Total:   m.Total,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// getStreak returns study streaks and the activity calendar.
// @Summary      Study streak
// @Description  Returns the current and longest daily streaks plus a 180-day activity calendar.
// @Tags         Progress
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Success      200        {object}  StreakResponse
// @Failure      500        {object}  map[string]string
// @Router       /progress/streak [get]
func (h *Handler) getStreak(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	results, err := h.store.ListResultsByUser(r.Context(), uid)
	if h.handleStoreError(w, err, "results") {
		return
	}

	completions := make([]time.Time, len(results))
	for i, res := range results {
		completions[i] = res.CompletedAt
	}

	streak := progress.ComputeStreak(completions, time.Now().UTC())
	activity := make([]DayActivityResponse, len(streak.DailyActivity))
	for i, d := range streak.DailyActivity {
		activity[i] = DayActivityResponse{Date: d.Date, Count: d.Count}
	}
	respondJSON(w, http.StatusOK, StreakResponse{
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
		DailyActivity: activity,
	})
}

// getOverallStats returns account-wide study statistics.
// @Summary      Overall stats
// @Description  Returns total quizzes, average score, lecture count, questions answered and estimated hours studied.
// @Tags         Progress
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Success      200        {object}  OverallStatsResponse
// @Failure      500        {object}  map[string]string
// @Router       /progress/stats [get]
func (h *Handler) getOverallStats(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	results, err := h.store.ListResultsByUser(r.Context(), uid)
	if h.handleStoreError(w, err, "results") {
		return
	}

	lectureCount, err := h.store.CountLectures(r.Context(), uid)
	if h.handleStoreError(w, err, "lectures") {
		return
	}

	stats := progress.ComputeOverallStats(results, lectureCount)
	respondJSON(w, http.StatusOK, OverallStatsResponse{
		TotalQuizzes:   stats.TotalQuizzes,
		AverageScore:   stats.AverageScore,
		TotalLectures:  stats.TotalLectures,
		HoursStudied:   stats.HoursStudied,
		TotalQuestions: stats.TotalQuestions,
	})
}
