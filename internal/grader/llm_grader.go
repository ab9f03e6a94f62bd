package grader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/llm"
)

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMGrader grades short answers by prompting a chat model.
type LLMGrader struct {
	client completer
}

var _ Grader = (*LLMGrader)(nil)

// NewLLMGrader creates a grader backed by the given LLM client.
func NewLLMGrader(client *llm.Client) *LLMGrader {
	return &LLMGrader{client: client}
}

const maxRetries = 2

// GradeShortAnswer prompts the model and parses its grade. It retries once
// on a malformed response. Callers are expected to apply Fallback on error.
func (g *LLMGrader) GradeShortAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (*Grade, error) {
	prompt := buildGradingPrompt(question, correctAnswer, userAnswer)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		response, err := g.client.Complete(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		grade, err := parseGrade(response)
		if err != nil {
			lastErr = err
			continue
		}
		return grade, nil
	}

	return nil, &GradeError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

func parseGrade(response string) (*Grade, error) {
	jsonStr := llm.ExtractJSON(response)
	if jsonStr == "" {
		return nil, &GradeError{Reason: "no JSON object found in model response"}
	}

	var payload struct {
		Score     int    `json:"score"`
		Feedback  string `json:"feedback"`
		IsCorrect bool   `json:"isCorrect"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, &GradeError{Reason: "invalid JSON from model", Wrapped: err}
	}

	if payload.Score < 0 {
		payload.Score = 0
	}
	if payload.Score > 100 {
		payload.Score = 100
	}
	if payload.Feedback == "" {
		payload.Feedback = "Unable to generate feedback."
	}

	return &Grade{
		Score:     payload.Score,
		Feedback:  payload.Feedback,
		IsCorrect: payload.IsCorrect,
	}, nil
}

func buildGradingPrompt(question, correctAnswer, userAnswer string) string {
	return fmt.Sprintf(`You are an educational AI grading assistant. Grade the following short answer question.

Question: %s
Expected Answer: %s
Student's Answer: %s

Provide a JSON response with:
1. "score": A number from 0-100 representing how well the answer matches the expected answer
2. "feedback": Constructive feedback explaining the grade (2-3 sentences)
3. "isCorrect": Boolean - true if score >= 70, false otherwise

Consider partial credit for answers that demonstrate understanding even if not perfectly worded.

Respond ONLY with valid JSON, no other text.`,
		question, correctAnswer, userAnswer)
}
