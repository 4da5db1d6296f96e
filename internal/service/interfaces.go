package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bytetrack/backend/internal/models"
	"github.com/bytetrack/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for onboarding and profile operations
type IProfileService interface {
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, biometrics types.BiometricProfile) (*types.OnboardingResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, biometrics types.BiometricProfile) (*types.OnboardingResponse, error)
	SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) error
}

// IMealService defines the interface for diary operations
type IMealService interface {
	CreateMeal(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.MealEntry, error)
	GetMeal(ctx context.Context, mealID, userID uuid.UUID) (*models.MealEntry, error)
	ListMeals(ctx context.Context, userID uuid.UUID, date *time.Time) ([]models.MealEntry, error)
	UpdateMeal(ctx context.Context, mealID, userID uuid.UUID, req *types.UpdateMealRequest) (*models.MealEntry, error)
	DeleteMeal(ctx context.Context, mealID, userID uuid.UUID) error
	DailyTotals(ctx context.Context, userID uuid.UUID, date time.Time) (*types.DailyTotals, error)
	AddFavorite(ctx context.Context, userID uuid.UUID, req *types.AddFavoriteRequest) (*models.FavoriteFood, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.FavoriteFood, error)
	RemoveFavorite(ctx context.Context, userID uuid.UUID, foodID string) error
	CreateCustomFood(ctx context.Context, userID uuid.UUID, req *types.CreateCustomFoodRequest) (*models.CustomFood, error)
	ListCustomFoods(ctx context.Context, userID uuid.UUID) ([]models.CustomFood, error)
	DeleteCustomFood(ctx context.Context, foodID, userID uuid.UUID) error
}

// IFoodService defines the interface for food search operations
type IFoodService interface {
	SearchFoods(ctx context.Context, query string, opts types.SearchOptions) types.SearchResult
	SearchLocal(query, category string) []types.FoodItem
	LookupBarcode(ctx context.Context, barcode string) (*types.FoodItem, error)
	Categories() []types.FoodCategory
	ServingNutrition(food types.FoodItem, servings float64) types.NutritionInfo
}
