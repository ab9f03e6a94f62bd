package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DBPath          string

	// LLM generation and grading
	LLMURL    string // OpenAI-compatible endpoint, e.g. "https://openrouter.ai/api/v1"
	LLMAPIKey string
	LLMModel  string // model name, e.g. "openai/gpt-4o-mini"

	// Background generation workers
	GenerationWorkers int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:     mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:   mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:            getenvDefault("DB_PATH", "lecturelab.db"),
		LLMURL:            getenvDefault("LLM_URL", "https://openrouter.ai/api/v1"),
		LLMAPIKey:         os.Getenv("LLM_API_KEY"),
		LLMModel:          getenvDefault("LLM_MODEL", "openai/gpt-4o-mini"),
		GenerationWorkers: 3,
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
