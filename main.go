package main

import (
	"log"
	"time"

	"deepresearch-backend/config"
	"deepresearch-backend/internal/api"
	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/services"
	"deepresearch-backend/pkg/logger"
)

// @title deepresearch-backend API
// @version 1.0
// @description Research prompt pipeline: submit prompts, process them through
// @description Gemini, get notified by email/SMS/WhatsApp when results are ready.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := database.ConnectRedis(cfg); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	gemini := services.NewGeminiService()
	email := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort)
	signalwire := services.NewSignalWireService()
	sheetsService := services.NewSheetsService()

	notifier := services.NewNotifier(email, signalwire)
	prompts := services.NewPromptService(gemini, notifier)
	statusService := &services.StatusService{
		Gemini:     gemini,
		Email:      email,
		SignalWire: signalwire,
		Sheets:     sheetsService,
	}

	scheduler := services.NewScheduler(prompts, statusService,
		time.Duration(cfg.ProcessInterval)*time.Second,
		time.Duration(cfg.StatusRefreshInterval)*time.Second)
	scheduler.Start()
	defer scheduler.Stop()

	router := api.NewRouter(&api.Deps{
		Prompts: prompts,
		Sheets:  sheetsService,
		Status:  statusService,
	})

	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
