package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealEntry is one logged diary entry. Nutrition values are stored as
// consumed (already scaled by servings), not per 100g.
type MealEntry struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string    `gorm:"size:255;not null" json:"name"`
	NameEn   string    `gorm:"size:255" json:"name_en"`
	MealType string    `gorm:"size:20;not null" json:"meal_type"`
	Calories int       `gorm:"not null" json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Fiber    *float64  `json:"fiber,omitempty"`
	Sugar    *float64  `json:"sugar,omitempty"`
	Sodium   *int      `json:"sodium,omitempty"`
	Grams    float64   `json:"grams"`
	ImageURL *string   `gorm:"size:255" json:"image_url,omitempty"`
	Date     time.Time `gorm:"not null;index" json:"date"`
}

// FavoriteFood is a food saved from search results for quick logging.
type FavoriteFood struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_fav_user_food,unique" json:"user_id"`
	FoodID    string    `gorm:"size:64;not null;index:idx_fav_user_food,unique" json:"food_id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string   `gorm:"size:255;not null" json:"name"`
	NameEn      string   `gorm:"size:255" json:"name_en"`
	Category    string   `gorm:"size:50" json:"category"`
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

// CustomFood is a user-defined food not present in any catalog.
type CustomFood struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string   `gorm:"size:255;not null" json:"name"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       *float64 `json:"fiber,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Sodium      *int     `json:"sodium,omitempty"`
	ServingSize float64  `json:"serving_size"`
	ServingUnit string   `gorm:"size:10" json:"serving_unit"`
}
