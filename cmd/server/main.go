package main

import (
	"context"
	"log"
	"os"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/adapters/httpapi"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/application"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/config"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/infrastructure/database"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/infrastructure/i18n"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/infrastructure/openai"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}

	eventRepo := database.NewEventRepository(pool)
	calendarRepo := database.NewCalendarRepository(pool)

	// Sans clé API, le générateur retombe systématiquement sur les règles
	// heuristiques (le client reste nil).
	var completion output.CompletionClient
	if cfg.OpenAIAPIKey != "" {
		completion = openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	eventService := application.NewEventService(eventRepo, calendarRepo)
	echoService := application.NewEchoService(eventRepo, application.NewFollowupGenerator(completion))
	translator := i18n.NewTranslator("en")

	server := httpapi.NewServer(eventService, echoService, translator, cfg.DefaultCalendarID, cfg.DefaultUserID)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		log.Printf("❌ Erreur lors du démarrage du serveur HTTP: %v", err)
		os.Exit(1)
	}
}
