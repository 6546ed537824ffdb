package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "LISTEN_ADDR", "MIGRATIONS_PATH",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"DEFAULT_CALENDAR_ID", "DEFAULT_USER_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ListenAddr != ":8787" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q", cfg.MigrationsPath)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Errorf("OpenAIBaseURL = %q", cfg.OpenAIBaseURL)
	}
	if cfg.OpenAIModel != "gpt-4.1" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Errorf("OpenAIAPIKey = %q, want empty", cfg.OpenAIAPIKey)
	}
	if cfg.DefaultUserID != "demo-user" {
		t.Errorf("DefaultUserID = %q", cfg.DefaultUserID)
	}
	if cfg.DefaultCalendarID == "" {
		t.Error("DefaultCalendarID should have a default")
	}
	if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db.internal:5432/prod")
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DatabaseURL != "postgres://db.internal:5432/prod" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
}

func TestLoadRejectsMalformedDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "not-a-url")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for DATABASE_URL without scheme and host")
	}
}
