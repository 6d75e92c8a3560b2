package main

import (
	"log"
	"os"

	"reporter-backend/internal/config"
	"reporter-backend/internal/database"
	"reporter-backend/internal/detect"
	"reporter-backend/internal/handlers"
	"reporter-backend/internal/report"
	"reporter-backend/internal/router"
	"reporter-backend/internal/session"
	"reporter-backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	h := &handlers.Handlers{
		Store:     store.NewGormStore(db),
		Detector:  detect.NewYOLOAdapter(cfg.DetectorURL),
		Composer:  report.NewGeminiComposer(cfg.GoogleAPIKey, cfg.GeminiModel),
		Sessions:  session.NewStore(),
		Results:   session.NewResultStore(),
		UploadDir: cfg.UploadDir,
	}

	r := router.New(h)
	log.Printf("Listening on :%s", cfg.ListenPort)
	if err := r.Run(":" + cfg.ListenPort); err != nil {
		log.Fatal(err)
	}
}
