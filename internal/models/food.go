package models

import "time"

// LocalFood mirrors one curated catalog entry in the database. The
// in-memory catalog stays the source of truth for search; this table
// exists for reporting joins and is written by cmd/seed_foods.
type LocalFood struct {
	ID        string    `gorm:"size:16;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string   `gorm:"size:255;not null" json:"name"`
	NameEn      string   `gorm:"size:255;not null" json:"name_en"`
	Category    string   `gorm:"size:50;not null;index" json:"category"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       *float64 `json:"fiber,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Sodium      *int     `json:"sodium,omitempty"`
	ServingSize float64  `json:"serving_size"`
	ServingUnit string   `gorm:"size:10" json:"serving_unit"`
	Emoji       *string  `gorm:"size:10" json:"emoji,omitempty"`
}
