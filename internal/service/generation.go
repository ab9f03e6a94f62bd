package service

import (
	"context"
	"log/slog"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/domain/lecture"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/generator"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/store"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/worker"
)

// GenerationService runs study-material generation in the background so
// lecture creation returns immediately. A bounded worker pool caps how many
// LLM calls are in flight at once.
type GenerationService struct {
	store  store.Store
	gen    generator.Generator
	logger *slog.Logger
	pool   *worker.Pool
}

// NewGenerationService creates the service with its own worker pool.
func NewGenerationService(s store.Store, g generator.Generator, logger *slog.Logger, workers, queueSize int) *GenerationService {
	return &GenerationService{
		store:  s,
		gen:    g,
		logger: logger,
		pool:   worker.NewPool(workers, queueSize),
	}
}

// Enqueue schedules generation for a freshly created lecture. Blocks if the
// queue is full, which backpressures lecture creation rather than piling up
// unbounded goroutines.
func (gs *GenerationService) Enqueue(lec *lecture.Lecture) {
	title, content, lectureID := lec.Title, lec.Content, lec.ID
	gs.pool.Submit(func() {
		gs.generate(lectureID, title, content)
	})
}

// Close drains the queue and waits for in-flight generations.
func (gs *GenerationService) Close() {
	gs.pool.Close()
}

// generate runs on a pool worker. It uses context.Background because the
// work outlives the HTTP request that triggered it.
func (gs *GenerationService) generate(lectureID, title, content string) {
	ctx := context.Background()

	materials, err := gs.gen.Generate(ctx, title, content)
	if err != nil {
		gs.logger.Error("generation failed", "lecture_id", lectureID, "error", err)
		if markErr := gs.store.MarkLectureError(ctx, lectureID); markErr != nil {
			gs.logger.Error("failed to mark lecture as errored", "lecture_id", lectureID, "error", markErr)
		}
		return
	}

	err = gs.store.MarkLectureReady(ctx, lectureID, materials.Summary, materials.KeyConcepts, materials.Questions)
	if err != nil {
		gs.logger.Error("failed to save generated materials", "lecture_id", lectureID, "error", err)
		return
	}

	gs.logger.Info("lecture ready",
		"lecture_id", lectureID,
		"questions", len(materials.Questions),
		"concepts", len(materials.KeyConcepts),
	)
}
