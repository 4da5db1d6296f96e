package main

import (
	"log"

	"gorm.io/gorm/clause"

	"github.com/bytetrack/backend/config"
	"github.com/bytetrack/backend/internal/catalog"
	"github.com/bytetrack/backend/internal/database"
	"github.com/bytetrack/backend/internal/models"
)

// Mirrors the curated catalog into the local_foods table so reporting
// queries can join against it. Safe to re-run; rows are upserted by id.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rows := make([]models.LocalFood, 0, catalog.Size())
	for _, item := range catalog.All() {
		row := models.LocalFood{
			ID:          item.ID,
			Name:        item.Name,
			NameEn:      item.NameEn,
			Category:    item.Category,
			Calories:    item.Nutrition.Calories,
			Protein:     item.Nutrition.Protein,
			Carbs:       item.Nutrition.Carbs,
			Fat:         item.Nutrition.Fat,
			Fiber:       item.Nutrition.Fiber,
			Sugar:       item.Nutrition.Sugar,
			Sodium:      item.Nutrition.Sodium,
			ServingSize: item.Nutrition.ServingSize,
			ServingUnit: item.Nutrition.ServingUnit,
			Emoji:       item.Emoji,
		}
		rows = append(rows, row)
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
		log.Fatalf("Failed to seed foods: %v", err)
	}

	log.Printf("Seeded %d foods", len(rows))
}
