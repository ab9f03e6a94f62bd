package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/llm"
)

// completer is the slice of llm.Client this package needs.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMGenerator generates study materials by prompting a chat model for a
// structured JSON payload.
type LLMGenerator struct {
	client completer
}

var _ Generator = (*LLMGenerator)(nil)

// NewLLMGenerator creates a generator backed by the given LLM client.
func NewLLMGenerator(client *llm.Client) *LLMGenerator {
	return &LLMGenerator{client: client}
}

const maxRetries = 2

// Generate prompts the model and parses its response. It retries once on a
// malformed response; smaller models sometimes need a second try.
func (g *LLMGenerator) Generate(ctx context.Context, title, content string) (*Materials, error) {
	prompt := buildGenerationPrompt(title, content)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		response, err := g.client.Complete(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		materials, err := parseMaterials(response)
		if err != nil {
			lastErr = err
			continue
		}
		return materials, nil
	}

	return nil, &GenerateError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// generatedPayload mirrors the JSON schema the prompt asks for.
type generatedPayload struct {
	Summary     string   `json:"summary"`
	KeyConcepts []string `json:"keyConcepts"`
	Questions   []struct {
		Type          string   `json:"type"`
		Question      string   `json:"question"`
		Options       []string `json:"options,omitempty"`
		CorrectAnswer string   `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
		Concept       string   `json:"concept"`
	} `json:"questions"`
}

// parseMaterials extracts and validates the model's JSON payload.
func parseMaterials(response string) (*Materials, error) {
	jsonStr := llm.ExtractJSON(response)
	if jsonStr == "" {
		return nil, &GenerateError{Reason: "no JSON object found in model response"}
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, &GenerateError{Reason: "invalid JSON from model", Wrapped: err}
	}

	if payload.Summary == "" {
		return nil, &GenerateError{Reason: "model returned empty summary"}
	}
	if len(payload.Questions) == 0 {
		return nil, &GenerateError{Reason: "model returned no questions"}
	}

	questions := make([]lecture.Question, 0, len(payload.Questions))
	for i, q := range payload.Questions {
		qType := lecture.QuestionType(q.Type)
		if !qType.Valid() {
			return nil, &GenerateError{Reason: fmt.Sprintf("question %d has unknown type %q", i, q.Type)}
		}
		if q.Question == "" || q.CorrectAnswer == "" || q.Concept == "" {
			return nil, &GenerateError{Reason: fmt.Sprintf("question %d is missing required fields", i)}
		}
		if qType == lecture.TypeMCQ && len(q.Options) != 4 {
			return nil, &GenerateError{Reason: fmt.Sprintf("question %d: mcq needs 4 options, got %d", i, len(q.Options))}
		}
		if qType != lecture.TypeMCQ && len(q.Options) != 0 {
			return nil, &GenerateError{Reason: fmt.Sprintf("question %d: options only allowed for mcq", i)}
		}

		questions = append(questions, lecture.Question{
			Type:          qType,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Concept:       q.Concept,
		})
	}

	return &Materials{
		Summary:     payload.Summary,
		KeyConcepts: payload.KeyConcepts,
		Questions:   questions,
	}, nil
}

// buildGenerationPrompt keeps the schema at the end so it is the last thing
// the model sees.
func buildGenerationPrompt(title, content string) string {
	return fmt.Sprintf(`You are a study assistant. Read the lecture notes below and produce study materials.

Produce:
1. A concise summary (3-5 sentences).
2. The key concepts covered (up to 8 short names, e.g. "Photosynthesis").
3. Quiz questions: 10 multiple-choice ("mcq", exactly 4 options, correctAnswer must equal one option verbatim), 3 fill-in-the-blank ("fill-blank"), and 2 short-answer ("short-answer"). Tag every question with the concept it tests, drawn from the key concepts.

LECTURE TITLE:
%s

LECTURE NOTES:
%s

Respond with ONLY this JSON, no explanation, no markdown:
{"summary": "...", "keyConcepts": ["...", ...], "questions": [{"type": "mcq", "question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "...", "explanation": "...", "concept": "..."}, ...]}`,
		title, content)
}
