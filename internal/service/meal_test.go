package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetrack/backend/internal/service"
	"github.com/bytetrack/backend/internal/testhelpers"
	"github.com/bytetrack/backend/internal/types"
)

func padThaiEntry(date time.Time) *types.CreateMealRequest {
	return &types.CreateMealRequest{
		Name:     "ผัดไทย",
		NameEn:   "Pad Thai",
		MealType: "lunch",
		Calories: 400,
		Protein:  15,
		Carbs:    55,
		Fat:      14,
		Grams:    300,
		Date:     &date,
	}
}

func TestCreateAndGetMeal(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)

	created, err := s.CreateMeal(ctx, user.ID, padThaiEntry(time.Now()))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := s.GetMeal(ctx, created.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pad Thai", fetched.NameEn)
	assert.Equal(t, 400, fetched.Calories)
}

func TestGetMealOwnership(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	owner := testhelpers.CreateTestUser(t, db)
	intruder := testhelpers.CreateTestUser(t, db)

	created, err := s.CreateMeal(ctx, owner.ID, padThaiEntry(time.Now()))
	require.NoError(t, err)

	_, err = s.GetMeal(ctx, created.ID, intruder.ID)
	assert.ErrorIs(t, err, service.ErrMealNotFound)

	_, err = s.GetMeal(ctx, uuid.New(), owner.ID)
	assert.ErrorIs(t, err, service.ErrMealNotFound)
}

func TestListMealsByDate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)

	today := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	_, err := s.CreateMeal(ctx, user.ID, padThaiEntry(today))
	require.NoError(t, err)
	_, err = s.CreateMeal(ctx, user.ID, padThaiEntry(yesterday))
	require.NoError(t, err)

	todays, err := s.ListMeals(ctx, user.ID, &today)
	require.NoError(t, err)
	assert.Len(t, todays, 1)

	all, err := s.ListMeals(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateMeal(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)

	created, err := s.CreateMeal(ctx, user.ID, padThaiEntry(time.Now()))
	require.NoError(t, err)

	newCalories := 480
	newType := "dinner"
	updated, err := s.UpdateMeal(ctx, created.ID, user.ID, &types.UpdateMealRequest{
		Calories: &newCalories,
		MealType: &newType,
	})
	require.NoError(t, err)
	assert.Equal(t, 480, updated.Calories)
	assert.Equal(t, "dinner", updated.MealType)
	// untouched fields survive
	assert.Equal(t, "Pad Thai", updated.NameEn)
}

func TestDeleteMeal(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)

	created, err := s.CreateMeal(ctx, user.ID, padThaiEntry(time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.DeleteMeal(ctx, created.ID, user.ID))

	_, err = s.GetMeal(ctx, created.ID, user.ID)
	assert.ErrorIs(t, err, service.ErrMealNotFound)
}

func TestDailyTotals(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)

	day := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	breakfast := padThaiEntry(day)
	breakfast.MealType = "breakfast"
	_, err := s.CreateMeal(ctx, user.ID, breakfast)
	require.NoError(t, err)

	lunch := padThaiEntry(day.Add(4 * time.Hour))
	_, err = s.CreateMeal(ctx, user.ID, lunch)
	require.NoError(t, err)

	// outside the requested day
	_, err = s.CreateMeal(ctx, user.ID, padThaiEntry(day.AddDate(0, 0, 1)))
	require.NoError(t, err)

	totals, err := s.DailyTotals(ctx, user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 800, totals.Calories)
	assert.InDelta(t, 30.0, totals.Protein, 0.001)
	assert.InDelta(t, 110.0, totals.Carbs, 0.001)
	assert.InDelta(t, 28.0, totals.Fat, 0.001)
}

func TestFavorites(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)

	fav, err := s.AddFavorite(ctx, user.ID, &types.AddFavoriteRequest{
		FoodID:   "th_2",
		Name:     "ผัดไทย",
		NameEn:   "Pad Thai",
		Category: "noodles",
		Calories: 400,
	})
	require.NoError(t, err)
	// serving defaults fill in
	assert.InDelta(t, 100.0, fav.ServingSize, 0.001)
	assert.Equal(t, "g", fav.ServingUnit)

	list, err := s.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "th_2", list[0].FoodID)

	require.NoError(t, s.RemoveFavorite(ctx, user.ID, "th_2"))

	list, err = s.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomFoods(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	s := service.NewMealService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)

	food, err := s.CreateCustomFood(ctx, user.ID, &types.CreateCustomFoodRequest{
		Name:     "Grandma's Curry",
		Calories: 320,
		Protein:  18,
		Carbs:    12,
		Fat:      22,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, food.ServingSize, 0.001)
	assert.Equal(t, "g", food.ServingUnit)

	list, err := s.ListCustomFoods(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.DeleteCustomFood(ctx, food.ID, user.ID))

	list, err = s.ListCustomFoods(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
