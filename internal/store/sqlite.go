package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/quiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS lectures (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    status TEXT NOT NULL,
    summary TEXT,
    key_concepts TEXT,
    questions TEXT,
    created_at INTEGER NOT NULL,
    next_review_at INTEGER,
    last_studied INTEGER
);

CREATE INDEX IF NOT EXISTS idx_lectures_user ON lectures(user_id);

CREATE TABLE IF NOT EXISTS quiz_results (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    lecture_id TEXT NOT NULL,
    quiz_type TEXT NOT NULL,
    score INTEGER NOT NULL,
    total_questions INTEGER NOT NULL,
    completed_at INTEGER NOT NULL,
    FOREIGN KEY (lecture_id) REFERENCES lectures(id)
);

CREATE INDEX IF NOT EXISTS idx_results_user ON quiz_results(user_id);
CREATE INDEX IF NOT EXISTS idx_results_lecture ON quiz_results(lecture_id);

CREATE TABLE IF NOT EXISTS quiz_answers (
    result_id TEXT NOT NULL,
    question_index INTEGER NOT NULL,
    user_answer TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    concept TEXT NOT NULL,
    PRIMARY KEY (result_id, question_index),
    FOREIGN KEY (result_id) REFERENCES quiz_results(id)
);
`

// SQLiteStore implements Store on a single SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Lectures
// ============================================================================

func (s *SQLiteStore) SaveLecture(ctx context.Context, lec *lecture.Lecture) error {
	keyConcepts, questions, err := marshalGenerated(lec)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO lectures (id, user_id, title, content, status, summary, key_concepts, questions, created_at, next_review_at, last_studied)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lec.ID, lec.UserID, lec.Title, lec.Content, string(lec.Status),
		nullString(lec.Summary), keyConcepts, questions,
		lec.CreatedAt.UnixMilli(), nullMillis(lec.NextReviewDate), nullMillis(lec.LastStudied),
	)
	return err
}

func (s *SQLiteStore) GetLecture(ctx context.Context, userID, lectureID string) (*lecture.Lecture, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, status, summary, key_concepts, questions, created_at, next_review_at, last_studied
		FROM lectures WHERE id = ? AND user_id = ?`,
		lectureID, userID,
	)
	return scanLecture(row)
}

func (s *SQLiteStore) ListLectures(ctx context.Context, userID string) ([]*lecture.Lecture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, status, summary, key_concepts, questions, created_at, next_review_at, last_studied
		FROM lectures WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLectures(rows)
}

func (s *SQLiteStore) ListDueLectures(ctx context.Context, userID string, now time.Time) ([]*lecture.Lecture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, status, summary, key_concepts, questions, created_at, next_review_at, last_studied
		FROM lectures
		WHERE user_id = ? AND status = ? AND next_review_at IS NOT NULL AND next_review_at <= ?
		ORDER BY next_review_at ASC`,
		userID, string(lecture.StatusReady), now.UnixMilli(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLectures(rows)
}

func (s *SQLiteStore) CountLectures(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lectures WHERE user_id = ?", userID).Scan(&n)
	return n, err
}

// DeleteLecture removes a lecture and cascades to its quiz history.
func (s *SQLiteStore) DeleteLecture(ctx context.Context, userID, lectureID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM quiz_answers
		WHERE result_id IN (SELECT id FROM quiz_results WHERE lecture_id = ? AND user_id = ?)`,
		lectureID, userID,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM quiz_results WHERE lecture_id = ? AND user_id = ?", lectureID, userID)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM lectures WHERE id = ? AND user_id = ?", lectureID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (s *SQLiteStore) MarkLectureReady(ctx context.Context, lectureID, summary string, keyConcepts []string, questions []lecture.Question) error {
	conceptsJSON, err := json.Marshal(keyConcepts)
	if err != nil {
		return err
	}
	questionsJSON, err := json.Marshal(storedQuestions(questions))
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE lectures SET status = ?, summary = ?, key_concepts = ?, questions = ? WHERE id = ?`,
		string(lecture.StatusReady), summary, string(conceptsJSON), string(questionsJSON), lectureID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (s *SQLiteStore) MarkLectureError(ctx context.Context, lectureID string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE lectures SET status = ?, summary = NULL, key_concepts = NULL, questions = NULL WHERE id = ?`,
		string(lecture.StatusError), lectureID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// ============================================================================
// Quiz results
// ============================================================================

// SaveQuizResult persists the result with its answer records and patches the
// owning lecture's next_review_at/last_studied in the same transaction.
// Concurrent submissions for one lecture race on the patch; last write wins,
// which matches the "most recent quiz always wins" scheduling rule.
func (s *SQLiteStore) SaveQuizResult(ctx context.Context, res *quiz.Result, nextReview time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO quiz_results (id, user_id, lecture_id, quiz_type, score, total_questions, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.UserID, res.LectureID, string(res.QuizType), res.Score, res.TotalQuestions, res.CompletedAt.UnixMilli(),
	)
	if err != nil {
		return err
	}

	for _, a := range res.Answers {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO quiz_answers (result_id, question_index, user_answer, is_correct, concept)
			VALUES (?, ?, ?, ?, ?)`,
			res.ID, a.QuestionIndex, a.UserAnswer, boolToInt(a.IsCorrect), a.Concept,
		)
		if err != nil {
			return err
		}
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE lectures SET next_review_at = ?, last_studied = ? WHERE id = ? AND user_id = ?`,
		nextReview.UnixMilli(), res.CompletedAt.UnixMilli(), res.LectureID, res.UserID,
	)
	if err != nil {
		return err
	}
	if err := checkAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListResultsByUser(ctx context.Context, userID string) ([]*quiz.Result, error) {
	return s.listResults(ctx, `
		SELECT id, user_id, lecture_id, quiz_type, score, total_questions, completed_at
		FROM quiz_results WHERE user_id = ? ORDER BY completed_at DESC`,
		userID,
	)
}

func (s *SQLiteStore) ListResultsByLecture(ctx context.Context, userID, lectureID string) ([]*quiz.Result, error) {
	return s.listResults(ctx, `
		SELECT id, user_id, lecture_id, quiz_type, score, total_questions, completed_at
		FROM quiz_results WHERE user_id = ? AND lecture_id = ? ORDER BY completed_at DESC`,
		userID, lectureID,
	)
}

func (s *SQLiteStore) listResults(ctx context.Context, query string, args ...any) ([]*quiz.Result, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*quiz.Result
	for rows.Next() {
		var res quiz.Result
		var quizType string
		var completedAt int64
		if err := rows.Scan(&res.ID, &res.UserID, &res.LectureID, &quizType, &res.Score, &res.TotalQuestions, &completedAt); err != nil {
			return nil, err
		}
		res.QuizType = lecture.QuestionType(quizType)
		res.CompletedAt = time.UnixMilli(completedAt).UTC()
		results = append(results, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, res := range results {
		answers, err := s.loadAnswers(ctx, res.ID)
		if err != nil {
			return nil, err
		}
		res.Answers = answers
	}

	return results, nil
}

func (s *SQLiteStore) loadAnswers(ctx context.Context, resultID string) ([]quiz.AnswerRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_index, user_answer, is_correct, concept
		FROM quiz_answers WHERE result_id = ? ORDER BY question_index`,
		resultID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []quiz.AnswerRecord
	for rows.Next() {
		var a quiz.AnswerRecord
		var isCorrect int
		if err := rows.Scan(&a.QuestionIndex, &a.UserAnswer, &isCorrect, &a.Concept); err != nil {
			return nil, err
		}
		a.IsCorrect = isCorrect != 0
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// ============================================================================
// Row mapping helpers
// ============================================================================

// storedQuestion is the JSON column form of a generated question.
type storedQuestion struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Concept       string   `json:"concept"`
}

func storedQuestions(questions []lecture.Question) []storedQuestion {
	out := make([]storedQuestion, len(questions))
	for i, q := range questions {
		out[i] = storedQuestion{
			Type:          string(q.Type),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Concept:       q.Concept,
		}
	}
	return out
}

func marshalGenerated(lec *lecture.Lecture) (keyConcepts, questions sql.NullString, err error) {
	if lec.KeyConcepts != nil {
		b, err := json.Marshal(lec.KeyConcepts)
		if err != nil {
			return keyConcepts, questions, err
		}
		keyConcepts = sql.NullString{String: string(b), Valid: true}
	}
	if lec.Questions != nil {
		b, err := json.Marshal(storedQuestions(lec.Questions))
		if err != nil {
			return keyConcepts, questions, err
		}
		questions = sql.NullString{String: string(b), Valid: true}
	}
	return keyConcepts, questions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLecture(row rowScanner) (*lecture.Lecture, error) {
	var lec lecture.Lecture
	var status string
	var summary, keyConcepts, questions sql.NullString
	var createdAt int64
	var nextReview, lastStudied sql.NullInt64

	err := row.Scan(
		&lec.ID, &lec.UserID, &lec.Title, &lec.Content, &status,
		&summary, &keyConcepts, &questions,
		&createdAt, &nextReview, &lastStudied,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	lec.Status = lecture.Status(status)
	lec.Summary = summary.String
	lec.CreatedAt = time.UnixMilli(createdAt).UTC()

	if keyConcepts.Valid {
		if err := json.Unmarshal([]byte(keyConcepts.String), &lec.KeyConcepts); err != nil {
			return nil, fmt.Errorf("corrupt key_concepts for lecture %s: %w", lec.ID, err)
		}
	}
	if questions.Valid {
		var stored []storedQuestion
		if err := json.Unmarshal([]byte(questions.String), &stored); err != nil {
			return nil, fmt.Errorf("corrupt questions for lecture %s: %w", lec.ID, err)
		}
		lec.Questions = make([]lecture.Question, len(stored))
		for i, q := range stored {
			lec.Questions[i] = lecture.Question{
				Type:          lecture.QuestionType(q.Type),
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				Concept:       q.Concept,
			}
		}
	}
	if nextReview.Valid {
		t := time.UnixMilli(nextReview.Int64).UTC()
		lec.NextReviewDate = &t
	}
	if lastStudied.Valid {
		t := time.UnixMilli(lastStudied.Int64).UTC()
		lec.LastStudied = &t
	}

	return &lec, nil
}

func collectLectures(rows *sql.Rows) ([]*lecture.Lecture, error) {
	var lectures []*lecture.Lecture
	for rows.Next() {
		lec, err := scanLecture(rows)
		if err != nil {
			return nil, err
		}
		lectures = append(lectures, lec)
	}
	return lectures, rows.Err()
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
