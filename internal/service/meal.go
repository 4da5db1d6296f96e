package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bytetrack/backend/internal/models"
	"github.com/bytetrack/backend/internal/types"
)

// ErrMealNotFound covers both a missing entry and one owned by another
// user; the two cases are indistinguishable to callers.
var ErrMealNotFound = errors.New("meal not found")

var _ IMealService = (*MealService)(nil)

// MealService manages the meal diary, favorites and custom foods.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// CreateMeal logs a diary entry. Entries without a date default to now.
func (s *MealService) CreateMeal(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.MealEntry, error) {
	meal := models.MealEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     req.Name,
		NameEn:   req.NameEn,
		MealType: req.MealType,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
		Sugar:    req.Sugar,
		Sodium:   req.Sodium,
		Grams:    req.Grams,
		ImageURL: req.ImageURL,
		Date:     time.Now(),
	}
	if req.Date != nil {
		meal.Date = *req.Date
	}

	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetMeal fetches one entry, verifying ownership.
func (s *MealService) GetMeal(ctx context.Context, mealID, userID uuid.UUID) (*models.MealEntry, error) {
	var meal models.MealEntry
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	if meal.UserID != userID {
		return nil, ErrMealNotFound
	}
	return &meal, nil
}

// ListMeals returns a user's entries, optionally restricted to one day.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, date *time.Time) ([]models.MealEntry, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		start, end := dayBounds(*date)
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var meals []models.MealEntry
	if err := query.Order("date ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// UpdateMeal applies the provided field updates to an owned entry.
func (s *MealService) UpdateMeal(ctx context.Context, mealID, userID uuid.UUID, req *types.UpdateMealRequest) (*models.MealEntry, error) {
	meal, err := s.GetMeal(ctx, mealID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		meal.Name = *req.Name
	}
	if req.NameEn != nil {
		meal.NameEn = *req.NameEn
	}
	if req.MealType != nil {
		meal.MealType = *req.MealType
	}
	if req.Calories != nil {
		meal.Calories = *req.Calories
	}
	if req.Protein != nil {
		meal.Protein = *req.Protein
	}
	if req.Carbs != nil {
		meal.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		meal.Fat = *req.Fat
	}
	if req.Fiber != nil {
		meal.Fiber = req.Fiber
	}
	if req.Sugar != nil {
		meal.Sugar = req.Sugar
	}
	if req.Sodium != nil {
		meal.Sodium = req.Sodium
	}
	if req.Grams != nil {
		meal.Grams = *req.Grams
	}
	if req.ImageURL != nil {
		meal.ImageURL = req.ImageURL
	}
	if req.Date != nil {
		meal.Date = *req.Date
	}

	if err := s.db.WithContext(ctx).Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// DeleteMeal removes an owned entry.
func (s *MealService) DeleteMeal(ctx context.Context, mealID, userID uuid.UUID) error {
	meal, err := s.GetMeal(ctx, mealID, userID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(meal).Error
}

// DailyTotals sums one day's logged intake.
func (s *MealService) DailyTotals(ctx context.Context, userID uuid.UUID, date time.Time) (*types.DailyTotals, error) {
	meals, err := s.ListMeals(ctx, userID, &date)
	if err != nil {
		return nil, err
	}

	totals := types.DailyTotals{}
	for _, m := range meals {
		totals.Calories += m.Calories
		totals.Protein += m.Protein
		totals.Carbs += m.Carbs
		totals.Fat += m.Fat
	}
	return &totals, nil
}

// AddFavorite saves a food for quick logging.
func (s *MealService) AddFavorite(ctx context.Context, userID uuid.UUID, req *types.AddFavoriteRequest) (*models.FavoriteFood, error) {
	fav := models.FavoriteFood{
		ID:          uuid.New(),
		UserID:      userID,
		FoodID:      req.FoodID,
		Name:        req.Name,
		NameEn:      req.NameEn,
		Category:    req.Category,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		Sodium:      req.Sodium,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		Emoji:       req.Emoji,
	}
	if fav.ServingUnit == "" {
		fav.ServingUnit = "g"
	}
	if fav.ServingSize == 0 {
		fav.ServingSize = 100
	}

	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

// ListFavorites returns a user's saved foods.
func (s *MealService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.FavoriteFood, error) {
	var favorites []models.FavoriteFood
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// RemoveFavorite deletes a saved food by its food id.
func (s *MealService) RemoveFavorite(ctx context.Context, userID uuid.UUID, foodID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Delete(&models.FavoriteFood{}).Error
}

// CreateCustomFood stores a user-defined food with serving defaults.
func (s *MealService) CreateCustomFood(ctx context.Context, userID uuid.UUID, req *types.CreateCustomFoodRequest) (*models.CustomFood, error) {
	food := models.CustomFood{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		Sodium:      req.Sodium,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
	}
	if food.ServingUnit == "" {
		food.ServingUnit = "g"
	}
	if food.ServingSize == 0 {
		food.ServingSize = 100
	}

	if err := s.db.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// ListCustomFoods returns a user's custom foods.
func (s *MealService) ListCustomFoods(ctx context.Context, userID uuid.UUID) ([]models.CustomFood, error) {
	var foods []models.CustomFood
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// DeleteCustomFood removes an owned custom food.
func (s *MealService) DeleteCustomFood(ctx context.Context, foodID, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", foodID, userID).
		Delete(&models.CustomFood{}).Error
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
