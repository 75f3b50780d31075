// Package config reads runtime configuration from JENNY_* environment
// variables. Behavior knobs for the bot itself live in the YAML profile, not
// here; this covers only deployment concerns.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string
	HTTPAddr    string

	CorpusPath  string
	ProfilePath string

	TelegramToken string
	TelegramAPI   string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	SessionSweepSpec string
}

func FromEnv() Config {
	return Config{
		Environment:      stringOrDefault("JENNY_ENV", "development"),
		HTTPAddr:         stringOrDefault("JENNY_HTTP_ADDR", ":8080"),
		CorpusPath:       stringOrDefault("JENNY_CORPUS_PATH", "data/corpus.txt"),
		ProfilePath:      stringOrDefault("JENNY_PROFILE_PATH", "jenny.yaml"),
		TelegramToken:    os.Getenv("JENNY_TELEGRAM_TOKEN"),
		TelegramAPI:      stringOrDefault("JENNY_TELEGRAM_API", "https://api.telegram.org"),
		GeminiAPIKey:     os.Getenv("JENNY_GEMINI_API_KEY"),
		GeminiModel:      stringOrDefault("JENNY_GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeout:    time.Duration(intOrDefault("JENNY_GEMINI_TIMEOUT_SECS", 30)) * time.Second,
		SessionSweepSpec: stringOrDefault("JENNY_SESSION_SWEEP", "@every 5m"),
	}
}

func stringOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
