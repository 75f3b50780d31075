package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"JENNY_ENV", "JENNY_HTTP_ADDR", "JENNY_CORPUS_PATH", "JENNY_PROFILE_PATH",
		"JENNY_TELEGRAM_TOKEN", "JENNY_TELEGRAM_API", "JENNY_GEMINI_API_KEY",
		"JENNY_GEMINI_MODEL", "JENNY_GEMINI_TIMEOUT_SECS", "JENNY_SESSION_SWEEP",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.Environment != "development" {
		t.Fatalf("Environment = %q", cfg.Environment)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.CorpusPath != "data/corpus.txt" {
		t.Fatalf("CorpusPath = %q", cfg.CorpusPath)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.GeminiTimeout != 30*time.Second {
		t.Fatalf("GeminiTimeout = %v", cfg.GeminiTimeout)
	}
	if cfg.SessionSweepSpec != "@every 5m" {
		t.Fatalf("SessionSweepSpec = %q", cfg.SessionSweepSpec)
	}
	if cfg.TelegramToken != "" || cfg.GeminiAPIKey != "" {
		t.Fatal("secrets should default empty")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("JENNY_HTTP_ADDR", ":9999")
	t.Setenv("JENNY_TELEGRAM_TOKEN", "tok123")
	t.Setenv("JENNY_GEMINI_TIMEOUT_SECS", "5")
	t.Setenv("JENNY_GEMINI_MODEL", "gemini-1.5-pro")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.TelegramToken != "tok123" {
		t.Fatalf("TelegramToken = %q", cfg.TelegramToken)
	}
	if cfg.GeminiTimeout != 5*time.Second {
		t.Fatalf("GeminiTimeout = %v", cfg.GeminiTimeout)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Fatalf("GeminiModel = %q", cfg.GeminiModel)
	}
}

func TestIntOrDefaultBadValue(t *testing.T) {
	t.Setenv("JENNY_GEMINI_TIMEOUT_SECS", "not-a-number")
	cfg := FromEnv()
	if cfg.GeminiTimeout != 30*time.Second {
		t.Fatalf("GeminiTimeout = %v, want default", cfg.GeminiTimeout)
	}
}
