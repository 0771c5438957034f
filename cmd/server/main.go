package main

import (
	"fmt"
	"log"

	"finodex/internal/config"
	"finodex/internal/extract"
	"finodex/internal/gateway"
	"finodex/internal/handler"
	"finodex/internal/pipeline"
	"finodex/internal/registry"
	"finodex/internal/repository/postgres"
	"finodex/internal/router"
	"finodex/internal/service"
	s3storage "finodex/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	offerRepo := postgres.NewOfferRepo(db)

	// Initialize document type registry and checklists
	reg := registry.Load(cfg.Registry.DocumentTypesPath)
	checklists := registry.LoadChecklists(cfg.Registry.ChecklistsPath)

	// Initialize object storage for archival (optional)
	archiveSvc := service.NewArchiveService(nil, "")
	if cfg.S3.Enabled {
		s3Client, err := s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		archiveSvc = service.NewArchiveService(s3Client, cfg.S3.Bucket)
	} else {
		log.Printf("main: S3 archival disabled")
	}

	// Initialize the processing pipeline
	extractor := extract.NewExtractor(cfg.OCR)
	modelClient := gateway.NewClient(&cfg.Model)
	pipelineSvc := pipeline.NewService(reg, checklists, extractor, modelClient, offerRepo)

	// Initialize handlers
	documentH := handler.NewDocumentHandler(pipelineSvc, reg, archiveSvc)
	offerH := handler.NewOfferHandler(offerRepo)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(documentH, offerH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
