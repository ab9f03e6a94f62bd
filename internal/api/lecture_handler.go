package api

import (
	"net/http"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateLectureRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type QuestionResponse struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Concept       string   `json:"concept"`
}

type LectureResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Status         string             `json:"status"`
	Summary        string             `json:"summary,omitempty"`
	KeyConcepts    []string           `json:"key_concepts,omitempty"`
	Questions      []QuestionResponse `json:"questions,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	NextReviewDate *time.Time         `json:"next_review_date,omitempty"`
	LastStudied    *time.Time         `json:"last_studied,omitempty"`
}

func toLectureResponse(lec *lecture.Lecture) LectureResponse {
	resp := LectureResponse{
		ID:             lec.ID,
		Title:          lec.Title,
		Status:         string(lec.Status),
		Summary:        lec.Summary,
		KeyConcepts:    lec.KeyConcepts,
		CreatedAt:      lec.CreatedAt,
		NextReviewDate: lec.NextReviewDate,
		LastStudied:    lec.LastStudied,
	}
	for _, q := range lec.Questions {
		resp.Questions = append(resp.Questions, QuestionResponse{
			Type:          string(q.Type),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Concept:       q.Concept,
		})
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createLecture stores pasted notes and queues study-material generation.
// @Summary      Create a lecture
// @Description  Create a lecture from pasted notes; AI generation runs in the background and the lecture starts in the processing state.
// @Tags         Lectures
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                true  "Acting user"
// @Param        body       body      CreateLectureRequest  true  "Lecture to create"
// @Success      201        {object}  LectureResponse
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /lectures [post]
func (h *Handler) createLecture(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	var req CreateLectureRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lec, err := lecture.New(uid, req.Title, req.Content)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveLecture(r.Context(), lec); err != nil {
		h.logger.Error("failed to save lecture", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save lecture")
		return
	}

	h.generation.Enqueue(lec)

	respondJSON(w, http.StatusCreated, toLectureResponse(lec))
}

// listLectures lists the caller's lectures.
// @Summary      List lectures
// @Description  Returns the caller's lectures, newest first.
// @Tags         Lectures
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Success      200        {array}   LectureResponse
// @Failure      500        {object}  map[string]string
// @Router       /lectures [get]
func (h *Handler) listLectures(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	lectures, err := h.store.ListLectures(r.Context(), uid)
	if h.handleStoreError(w, err, "lectures") {
		return
	}

	response := make([]LectureResponse, len(lectures))
	for i, lec := range lectures {
		response[i] = toLectureResponse(lec)
	}
	respondJSON(w, http.StatusOK, response)
}

// listDueLectures lists lectures whose review date has passed.
// @Summary      List due lectures
// @Description  Returns ready lectures whose next review date is now or earlier, soonest first.
// @Tags         Lectures
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Success      200        {array}   LectureResponse
// @Failure      500        {object}  map[string]string
// @Router       /lectures/due [get]
func (h *Handler) listDueLectures(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	lectures, err := h.store.ListDueLectures(r.Context(), uid, time.Now().UTC())
	if h.handleStoreError(w, err, "lectures") {
		return
	}

	response := make([]LectureResponse, len(lectures))
	for i, lec := range lectures {
		response[i] = toLectureResponse(lec)
	}
	respondJSON(w, http.StatusOK, response)
}

// getLecture returns a single lecture with its generated materials.
// @Summary      Get a lecture
// @Description  Returns one lecture; generated summary, concepts and questions are present once it is ready.
// @Tags         Lectures
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Param        lectureID  path      string  true  "Lecture ID"
// @Success      200        {object}  LectureResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /lectures/{lectureID} [get]
func (h *Handler) getLecture(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	lec, err := h.store.GetLecture(r.Context(), uid, r.PathValue("lectureID"))
	if h.handleStoreError(w, err, "lecture") {
		return
	}

	respondJSON(w, http.StatusOK, toLectureResponse(lec))
}

// deleteLecture removes a lecture and its quiz history.
// @Summary      Delete a lecture
// @Description  Delete a lecture and cascade-delete its quiz results and answers.
// @Tags         Lectures
// @Param        X-User-ID  header  string  true  "Acting user"
// @Param        lectureID  path    string  true  "Lecture ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /lectures/{lectureID} [delete]
func (h *Handler) deleteLecture(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	err := h.store.DeleteLecture(r.Context(), uid, r.PathValue("lectureID"))
	if h.handleStoreError(w, err, "lecture") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
