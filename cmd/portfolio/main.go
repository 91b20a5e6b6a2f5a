package main

import (
	"context"
	"log"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/ambient"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/config"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/db"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/logging"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/service"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/session"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/store"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/studio"
	claudestudio "github.com/handytechnz-cloud/Blair-Portfolio/internal/studio/claude"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/theme"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	records := store.NewRecordStore(database)
	photoStore := store.NewPhotoStore(records)
	aboutStore := store.NewAboutStore(records)
	inquiryStore := store.NewInquiryStore(records)
	keyStore := store.NewAccessKeyStore(records)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	themes := theme.NewManager(ambient.NewSQLStore(database), logger)
	go themes.Run(ctx)

	sessions := session.NewRegistry(cfg.MasterKey, keyStore, logger)

	var assistant studio.Assistant
	if cfg.ClaudeAPIKey != "" {
		logger.Info("studio collaborator enabled", "model", cfg.ClaudeModel)
		assistant = claudestudio.NewAssistant(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	} else {
		logger.Info("studio collaborator disabled, no API key configured")
	}

	gallery := service.NewGalleryService(photoStore, aboutStore, themes, assistant, logger)
	mailbox := service.NewMailboxService(inquiryStore, logger)
	access := service.NewAccessService(keyStore, logger)

	boot := service.Bootstrap(ctx, gallery, mailbox, access, logger)

	server := web.NewServer(gallery, mailbox, access, sessions, themes, boot, logger)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
