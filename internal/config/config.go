package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string
	ListenAddr        string
	MigrationsPath    string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	DefaultCalendarID string
	DefaultUserID     string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		ListenAddr:        os.Getenv("LISTEN_ADDR"),
		MigrationsPath:    os.Getenv("MIGRATIONS_PATH"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       os.Getenv("OPENAI_MODEL"),
		DefaultCalendarID: os.Getenv("DEFAULT_CALENDAR_ID"),
		DefaultUserID:     os.Getenv("DEFAULT_USER_ID"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = "postgres://localhost:5432/calendar?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = ":8787"
	}
	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	// OPENAI_API_KEY est optionnelle : sans clé, la génération de suivis
	// utilise systématiquement les règles heuristiques.
	if strings.TrimSpace(c.OpenAIBaseURL) == "" {
		c.OpenAIBaseURL = "https://api.openai.com/v1"
	}
	if strings.TrimSpace(c.OpenAIModel) == "" {
		c.OpenAIModel = "gpt-4.1"
	}

	if strings.TrimSpace(c.DefaultCalendarID) == "" {
		c.DefaultCalendarID = "3c414e29-a3c3-4350-a334-5585cb22737a"
	}
	if strings.TrimSpace(c.DefaultUserID) == "" {
		c.DefaultUserID = "demo-user"
	}

	return nil
}
