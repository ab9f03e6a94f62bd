package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportQuestion struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Concept       string   `json:"concept"`
}

type ExportLecture struct {
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Summary     string           `json:"summary,omitempty"`
	KeyConcepts []string         `json:"key_concepts,omitempty"`
	Questions   []ExportQuestion `json:"questions,omitempty"`
}

type ExportData struct {
	Version    string          `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Lectures   []ExportLecture `json:"lectures"`
}

type ImportResult struct {
	LecturesCreated int `json:"lectures_created"`
	// Lectures imported without generated material are re-queued for
	// generation rather than imported half-empty.
	GenerationQueued int `json:"generation_queued"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportLectures serializes the caller's lectures as a JSON backup.
// @Summary      Export lectures
// @Description  Downloads the caller's lectures as a JSON backup; ready lectures include their generated materials.
// @Tags         Backup
// @Produce      json
// @Param        X-User-ID  header    string  true  "Acting user"
// @Success      200        {object}  ExportData
// @Failure      500        {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportLectures(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	lectures, err := h.store.ListLectures(r.Context(), uid)
	if h.handleStoreError(w, err, "lectures") {
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Lectures:   make([]ExportLecture, 0, len(lectures)),
	}

	for _, lec := range lectures {
		exp := ExportLecture{
			Title:   lec.Title,
			Content: lec.Content,
		}
		if lec.Status == lecture.StatusReady {
			exp.Summary = lec.Summary
			exp.KeyConcepts = lec.KeyConcepts
			exp.Questions = make([]ExportQuestion, len(lec.Questions))
			for i, q := range lec.Questions {
				exp.Questions[i] = ExportQuestion{
					Type:          string(q.Type),
					Question:      q.Question,
					Options:       q.Options,
					CorrectAnswer: q.CorrectAnswer,
					Explanation:   q.Explanation,
					Concept:       q.Concept,
				}
			}
		}
		exportData.Lectures = append(exportData.Lectures, exp)
	}

	w.Header().Set("Content-Disposition", "attachment; filename=lecture-lab-export.json")
	respondJSON(w, http.StatusOK, exportData)
}

// importLectures restores lectures from a JSON backup.
// @Summary      Import lectures
// @Description  Validates the whole backup first, then creates every lecture; entries without questions are re-queued for generation. Nothing is written if any entry is invalid.
// @Tags         Backup
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string      true  "Acting user"
// @Param        body       body      ExportData  true  "Backup to import"
// @Success      201        {object}  ImportResult
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importLectures(w http.ResponseWriter, r *http.Request) {
	uid := userID(w, r)
	if uid == "" {
		return
	}

	var data ExportData
	if !decodeJSON(w, r, &data) {
		return
	}

	// Validate the whole backup before the first write so a bad entry
	// cannot leave a half-imported account behind.
	lectures := make([]*lecture.Lecture, 0, len(data.Lectures))
	for _, exp := range data.Lectures {
		lec, err := buildImportedLecture(uid, exp)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lectures = append(lectures, lec)
	}

	result := ImportResult{}
	for _, lec := range lectures {
		if err := h.store.SaveLecture(r.Context(), lec); err != nil {
			h.logger.Error("failed to import lecture", "title", lec.Title, "error", err)
			respondJSON(w, http.StatusInternalServerError, map[string]any{
				"error":            "import stopped on a storage failure",
				"lectures_created": result.LecturesCreated,
			})
			return
		}
		result.LecturesCreated++

		if lec.Status == lecture.StatusProcessing {
			h.generation.Enqueue(lec)
			result.GenerationQueued++
		}
	}

	respondJSON(w, http.StatusCreated, result)
}

// buildImportedLecture turns one backup entry into a lecture without touching
// storage. Entries with questions arrive ready; the rest stay in processing.
func buildImportedLecture(userID string, exp ExportLecture) (*lecture.Lecture, error) {
	lec, err := lecture.New(userID, exp.Title, exp.Content)
	if err != nil {
		return nil, err
	}
	if len(exp.Questions) == 0 {
		return lec, nil
	}

	questions := make([]lecture.Question, len(exp.Questions))
	for i, q := range exp.Questions {
		qType := lecture.QuestionType(q.Type)
		if !qType.Valid() {
			return nil, errors.New("unknown question type: " + q.Type)
		}
		questions[i] = lecture.Question{
			Type:          qType,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Concept:       q.Concept,
		}
	}
	if err := lec.MarkReady(exp.Summary, exp.KeyConcepts, questions); err != nil {
		return nil, err
	}
	return lec, nil
}
