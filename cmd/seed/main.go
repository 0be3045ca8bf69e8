package main

import (
	"fmt"
	"time"

	"post-manager/internal/model"
	"post-manager/pkg/config"
	"post-manager/pkg/database"
	"post-manager/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&model.MovieModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already contains movies. Skipping seed.")
		return nil
	}

	log.Info("Seeding database with sample data...")

	now := time.Now().UTC()

	movies := []model.MovieModel{
		{
			Title:          "The Shawshank Redemption",
			Genre:          strPtr("Drama"),
			Rating:         intPtr(5),
			PosterImageURL: strPtr("https://images.unsplash.com/photo-1536440136628-849c177e76a1"),
			CreatedAt:      now.AddDate(0, 0, -10),
			UpdatedAt:      now.AddDate(0, 0, -10),
		},
		{
			Title:          "The Dark Knight",
			Genre:          strPtr("Action"),
			Rating:         intPtr(5),
			PosterImageURL: strPtr("https://images.unsplash.com/photo-1509347528160-9a9e33742cdb"),
			CreatedAt:      now.AddDate(0, 0, -9),
			UpdatedAt:      now.AddDate(0, 0, -9),
		},
		{
			Title:          "Inception",
			Genre:          strPtr("Sci-Fi"),
			Rating:         intPtr(5),
			PosterImageURL: strPtr("https://images.unsplash.com/photo-1440404653325-ab127d49abc1"),
			CreatedAt:      now.AddDate(0, 0, -8),
			UpdatedAt:      now.AddDate(0, 0, -8),
		},
		{
			Title:          "Pulp Fiction",
			Genre:          strPtr("Crime"),
			Rating:         intPtr(5),
			PosterImageURL: strPtr("https://images.unsplash.com/photo-1478720568477-152d9b164e26"),
			CreatedAt:      now.AddDate(0, 0, -7),
			UpdatedAt:      now.AddDate(0, 0, -7),
		},
		{
			Title:          "Forrest Gump",
			Genre:          strPtr("Drama"),
			Rating:         intPtr(5),
			PosterImageURL: strPtr("https://images.unsplash.com/photo-1485846234645-a62644f84728"),
			CreatedAt:      now.AddDate(0, 0, -6),
			UpdatedAt:      now.AddDate(0, 0, -6),
		},
		{
			Title:     "The Room",
			Genre:     strPtr("Drama"),
			Rating:    intPtr(1),
			CreatedAt: now.AddDate(0, 0, -5),
			UpdatedAt: now.AddDate(0, 0, -5),
		},
	}

	if err := db.Create(&movies).Error; err != nil {
		return err
	}

	posts := []model.PostModel{
		{
			Name:        "Welcome to Post Manager",
			Description: "A sample post demonstrating the posts API. Posts have a name, a description, and an optional image.",
			Image:       strPtr("https://images.unsplash.com/photo-1499750310107-5fef28a66643"),
			CreatedAt:   now.AddDate(0, 0, -3),
			UpdatedAt:   now.AddDate(0, 0, -3),
		},
		{
			Name:        "Second sample post",
			Description: "Another seeded record, useful for trying out search, sorting, and pagination.",
			CreatedAt:   now.AddDate(0, 0, -2),
			UpdatedAt:   now.AddDate(0, 0, -2),
		},
	}

	return db.Create(&posts).Error
}
