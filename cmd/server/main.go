package main

import (
	"post-manager/internal/app"
	"post-manager/internal/imageres"
	"post-manager/pkg/config"
	"post-manager/pkg/database"
	"post-manager/pkg/logger"
	"post-manager/pkg/s3"
)

// @title           Post Management API
// @version         1.0
// @description     REST API for managing posts and movies with image upload support

// @contact.name   API Support
// @contact.email  support@postmanagement.com

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	var uploader imageres.Uploader
	if cfg.UploadConfigured() {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
		uploader = s3Client
	} else {
		log.Warn("Upload sink is not configured. Image file uploads will fail unless UPLOAD_PLACEHOLDER_FALLBACK is set.")
	}

	app.Run(cfg, log, db, uploader)
}
