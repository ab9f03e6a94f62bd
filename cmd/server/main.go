package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/api"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/generator"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/grader"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/infrastructure/config"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/llm"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/service"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/store"

	_ "github.com/Karthik-NDSK/the-lecture-lab/docs" // generated swagger docs
)

// @title           The Lecture Lab API
// @version         1.0
// @description     Study assistant: paste lecture notes, get AI-generated quizzes, track mastery and review schedules.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	llmClient := llm.NewClient(llm.Config{
		BaseURL: cfg.LLMURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: 120 * time.Second,
	})

	generationSvc := service.NewGenerationService(db, generator.NewLLMGenerator(llmClient), logger, cfg.GenerationWorkers, 32)
	defer generationSvc.Close()

	quizSvc := service.NewQuizService(db, grader.NewLLMGrader(llmClient), logger, nil)

	handler := api.NewHandler(db, quizSvc, generationSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
