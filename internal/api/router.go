package api

import "net/http"

// RegisterRoutes wires all handlers onto the mux using Go 1.22 method routing.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Lectures
	mux.HandleFunc("POST /lectures", h.createLecture)
	mux.HandleFunc("GET /lectures", h.listLectures)
	mux.HandleFunc("GET /lectures/due", h.listDueLectures)
	mux.HandleFunc("GET /lectures/{lectureID}", h.getLecture)
	mux.HandleFunc("DELETE /lectures/{lectureID}", h.deleteLecture)

	// Quizzes
	mux.HandleFunc("POST /lectures/{lectureID}/quiz", h.submitQuiz)
	mux.HandleFunc("GET /lectures/{lectureID}/results", h.listResults)
	mux.HandleFunc("GET /lectures/{lectureID}/stats", h.getLectureStats)

	// Progress
	mux.HandleFunc("GET /progress/mastery", h.getMastery)
	mux.HandleFunc("GET /progress/streak", h.getStreak)
	mux.HandleFunc("GET /progress/stats", h.getOverallStats)

	// Backup
	mux.HandleFunc("GET /export", h.exportLectures)
	mux.HandleFunc("POST /import", h.importLectures)
}
