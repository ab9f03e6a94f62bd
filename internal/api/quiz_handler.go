package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/progress"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitQuizRequest struct {
	QuizType string `json:"quiz_type"`
	Answers  []struct {
		QuestionIndex int    `json:"question_index"`
		Answer        string `json:"answer"`
	} `json:"answers"`
}

type AnswerOutcomeResponse struct {
	QuestionIndex int    `json:"question_index"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Feedback      string `json:"feedback,omitempty"`
}

type SubmitQuizResponse struct {
	ResultID       string                  `json:"result_id"`
	Score          int                     `json:"score"`
	TotalQuestions int                     `json:"total_questions"`
	Outcomes       []AnswerOutcomeResponse `json:"outcomes"`
	NextReviewDate time.Time               `json:"next_review_date"`
}

type AnswerRecordResponse struct {
	QuestionIndex int    `json:"question_index"`
	UserAnswer    string `json:"user_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Concept       string `json:"concept"`
}

type QuizResultResponse struct {
	ID             string                 `json:"id"`
	QuizType       string                 `json:"quiz_type"`
	Score          int                    `json:"score"`
	TotalQuestions int                    `json:"total_questions"`
	Answers        []AnswerRecordResponse `json:"answers"`
	CompletedAt    time.Time              `json:"completed_at"`
}

type LectureStatsResponse struct {
	TotalQuizzes int       `json:"total_quizzes"`
	AverageScore int       `json:"average_score"`
	LastStudied  time.Time `json:"last_studied"`
}

func toResultResponse(res *quiz.Result) QuizResultResponse {
	answers := make([]AnswerRecordResponse, len(res.Answers))
	for i, a := range res.Answers {
		answers[i] = AnswerRecordResponse{
			QuestionIndex: a.QuestionIndex,
			UserAnswer:    a.UserAnswer,
			IsCorrect:     a.IsCorrect,
			Concept:       a.Concept,
		}
	}
	return QuizResultResponse{
		ID:             res.ID,
		QuizType:       string(res.QuizType),
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		Answers:        answers,
		CompletedAt:    res.CompletedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitQuiz grades a quiz attempt and reschedules the lecture's review.
// @Summary      Submit a quiz
// @Description  Grades every answer for the chosen quiz type, stores the immutable result and patches the lecture's review schedule atomically.
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string             true  "Acting user"
// @Param        lectureID  path      string             true  "Lecture ID"
// @Param        body       body      SubmitQuizRequest  true  "Answers, one per question of the chosen type"
// @Success      201        {object}  SubmitQuizResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /lectures/{lectureID}/quiz [post]
func (h *Handler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	var req SubmitQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answers := make([]service.SubmittedAnswer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = service.SubmittedAnswer{
			QuestionIndex: a.QuestionIndex,
			Answer:        a.Answer,
		}
	}

	submission, err := h.quizzes.Submit(r.Context(), uid, r.PathValue("lectureID"), lecture.QuestionType(req.QuizType), answers)
	switch {
	case errors.Is(err, service.ErrUnknownQuizType),
		errors.Is(err, service.ErrLectureNotReady),
		errors.Is(err, service.ErrNoQuestions),
		errors.Is(err, service.ErrAnswerCount):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case h.handleStoreError(w, err, "lecture"):
		return
	}

	outcomes := make([]AnswerOutcomeResponse, len(submission.Outcomes))
	for i, o := range submission.Outcomes {
		outcomes[i] = AnswerOutcomeResponse{
			QuestionIndex: o.QuestionIndex,
			IsCorrect:     o.IsCorrect,
			CorrectAnswer: o.CorrectAnswer,
			Explanation:   o.Explanation,
			Feedback:      o.Feedback,
		}
	}

	respondJSON(w, http.StatusCreated, SubmitQuizResponse{
		ResultID:       submission.Result.ID,
		Score:          submission.Result.Score,
		TotalQuestions: submission.Result.TotalQuestions,
		Outcomes:       outcomes,
		NextReviewDate: submission.NextReview,
	})
}

// listResults returns the quiz history for one lecture.
// @Summary      List quiz results
// @Description  Returns every quiz result for a lecture, newest first.
// @Tags         Quizzes
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Param        lectureID  path      string  true  "Lecture ID"
// @Success      200        {array}   QuizResultResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /lectures/{lectureID}/results [get]
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}
	lectureID := r.PathValue("lectureID")

	// 404 for lectures outside the caller's scope, before touching results.
	if _, err := h.store.GetLecture(r.Context(), uid, lectureID); h.handleStoreError(w, err, "lecture") {
		return
	}

	results, err := h.store.ListResultsByLecture(r.Context(), uid, lectureID)
	if h.handleStoreError(w, err, "results") {
		return
	}

	response := make([]QuizResultResponse, len(results))
	for i, res := range results {
		response[i] = toResultResponse(res)
	}
	respondJSON(w, http.StatusOK, response)
}

// getLectureStats returns per-lecture quiz aggregates.
// @Summary      Get lecture stats
// @Description  Returns total quizzes, average score and last-studied time for one lecture; null if it was never quizzed.
// @Tags         Quizzes
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Param        lectureID  path      string  true  "Lecture ID"
// @Success      200        {object}  LectureStatsResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /lectures/{lectureID}/stats [get]
func (h *Handler) getLectureStats(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}
	lectureID := r.PathValue("lectureID")

	if _, err := h.store.GetLecture(r.Context(), uid, lectureID); h.handleStoreError(w, err, "lecture") {
		return
	}

	results, err := h.store.ListResultsByLecture(r.Context(), uid, lectureID)
	if h.handleStoreError(w, err, "results") {
		return
	}

	stats := progress.ComputeLectureStats(results)
	if stats == nil {
		respondJSON(w, http.StatusOK, nil)
		return
	}

	respondJSON(w, http.StatusOK, LectureStatsResponse{
		TotalQuizzes: stats.TotalQuizzes,
		AverageScore: stats.AverageScore,
		LastStudied:  stats.LastStudied,
	})
}
