package types

import "time"

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OnboardingResponse is returned after onboarding completes or the
// profile is updated. It carries the freshly computed targets.
type OnboardingResponse struct {
	Profile BiometricProfile `json:"profile"`
	Targets EnergyTargets    `json:"targets"`
}

// CreateMealRequest is the payload for logging a diary entry.
type CreateMealRequest struct {
	Name     string     `json:"name" binding:"required"`
	NameEn   string     `json:"name_en"`
	MealType string     `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Calories int        `json:"calories" binding:"min=0"`
	Protein  float64    `json:"protein" binding:"min=0"`
	Carbs    float64    `json:"carbs" binding:"min=0"`
	Fat      float64    `json:"fat" binding:"min=0"`
	Fiber    *float64   `json:"fiber,omitempty"`
	Sugar    *float64   `json:"sugar,omitempty"`
	Sodium   *int       `json:"sodium,omitempty"`
	Grams    float64    `json:"grams"`
	ImageURL *string    `json:"image_url,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

// UpdateMealRequest carries optional field updates for a diary entry.
type UpdateMealRequest struct {
	Name     *string    `json:"name,omitempty"`
	NameEn   *string    `json:"name_en,omitempty"`
	MealType *string    `json:"meal_type,omitempty" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Calories *int       `json:"calories,omitempty"`
	Protein  *float64   `json:"protein,omitempty"`
	Carbs    *float64   `json:"carbs,omitempty"`
	Fat      *float64   `json:"fat,omitempty"`
	Fiber    *float64   `json:"fiber,omitempty"`
	Sugar    *float64   `json:"sugar,omitempty"`
	Sodium   *int       `json:"sodium,omitempty"`
	Grams    *float64   `json:"grams,omitempty"`
	ImageURL *string    `json:"image_url,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

// AddFavoriteRequest saves a food from search results for quick logging.
type AddFavoriteRequest struct {
	FoodID      string   `json:"food_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	NameEn      string   `json:"name_en"`
	Category    string   `json:"category"`
	Calories    int      `json:"calories" binding:"min=0"`
	Protein     float64  `json:"protein" binding:"min=0"`
	Carbs       float64  `json:"carbs" binding:"min=0"`
	Fat         float64  `json:"fat" binding:"min=0"`
	Fiber       *float64 `json:"fiber,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Sodium      *int     `json:"sodium,omitempty"`
	ServingSize float64  `json:"serving_size"`
	ServingUnit string   `json:"serving_unit"`
	Emoji       *string  `json:"emoji,omitempty"`
}

// CreateCustomFoodRequest defines a user-entered food.
type CreateCustomFoodRequest struct {
	Name        string   `json:"name" binding:"required"`
	Calories    int      `json:"calories" binding:"min=0"`
	Protein     float64  `json:"protein" binding:"min=0"`
	Carbs       float64  `json:"carbs" binding:"min=0"`
	Fat         float64  `json:"fat" binding:"min=0"`
	Fiber       *float64 `json:"fiber,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Sodium      *int     `json:"sodium,omitempty"`
	ServingSize float64  `json:"serving_size"`
	ServingUnit string   `json:"serving_unit"`
}

// DailyTotals aggregates one day's logged intake.
type DailyTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
