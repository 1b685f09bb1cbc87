package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Server struct {
		Address      string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		IdleTimeout  time.Duration
	}
	HuggingFace struct {
		Token          string
		BaseURL        string
		SentimentModel string
		EmotionModel   string
		Timeout        time.Duration
	}
	// DatabaseURL is optional; the analysis history store is skipped
	// entirely when it is empty.
	DatabaseURL string
	LogLevel    string
	// TunablesPath points at an optional TOML file overriding the
	// classifier thresholds.
	TunablesPath string
	Tunables     Tunables
}

func Load() (Config, error) {
	var cfg Config

	// A missing .env file is fine; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg.Server.Address = getEnvOrDefault("SERVER_ADDRESS", ":8080")
	cfg.Server.ReadTimeout = getDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
	cfg.Server.IdleTimeout = getDurationOrDefault("SERVER_IDLE_TIMEOUT", 60*time.Second)

	cfg.HuggingFace.Token = os.Getenv("HF_API_TOKEN")
	cfg.HuggingFace.BaseURL = getEnvOrDefault("HF_BASE_URL", "https://api-inference.huggingface.co/models")
	cfg.HuggingFace.SentimentModel = getEnvOrDefault("HF_SENTIMENT_MODEL", "cardiffnlp/twitter-roberta-base-sentiment-latest")
	cfg.HuggingFace.EmotionModel = getEnvOrDefault("HF_EMOTION_MODEL", "j-hartmann/emotion-english-distilroberta-base")
	cfg.HuggingFace.Timeout = getDurationOrDefault("HF_TIMEOUT", 10*time.Second)

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	cfg.TunablesPath = os.Getenv("INSIGHTD_TUNABLES")

	tunables, err := LoadTunables(cfg.TunablesPath)
	if err != nil {
		return cfg, fmt.Errorf("load tunables: %w", err)
	}
	cfg.Tunables = tunables

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("Warning: invalid duration for %s: %v, using default", key, err)
			return defaultValue
		}
		return duration
	}
	return defaultValue
}
