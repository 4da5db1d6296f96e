package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bytetrack/backend/internal/middleware"
	"github.com/bytetrack/backend/internal/service"
	"github.com/bytetrack/backend/internal/types"
)

// MealHandler handles diary, favorite and custom food requests.
type MealHandler struct {
	mealService service.IMealService
	authService service.IAuthService
}

func NewMealHandler(mealService service.IMealService, authService service.IAuthService) *MealHandler {
	return &MealHandler{
		mealService: mealService,
		authService: authService,
	}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	meals.Use(middleware.AuthMiddleware(h.authService))
	{
		meals.POST("", h.CreateMeal)
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)
		meals.PUT("/:id", h.UpdateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}

	favorites := router.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware(h.authService))
	{
		favorites.POST("", h.AddFavorite)
		favorites.GET("", h.ListFavorites)
		favorites.DELETE("/:foodId", h.RemoveFavorite)
	}

	custom := router.Group("/custom-foods")
	custom.Use(middleware.AuthMiddleware(h.authService))
	{
		custom.POST("", h.CreateCustomFood)
		custom.GET("", h.ListCustomFoods)
		custom.DELETE("/:id", h.DeleteCustomFood)
	}
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.mealService.CreateMeal(c.Request.Context(), userID.(uuid.UUID), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create meal"})
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	meals, err := h.mealService.ListMeals(c.Request.Context(), userID.(uuid.UUID), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, mealID, ok := h.mealIDs(c)
	if !ok {
		return
	}

	meal, err := h.mealService.GetMeal(c.Request.Context(), mealID, userID)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get meal"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, mealID, ok := h.mealIDs(c)
	if !ok {
		return
	}

	var req types.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.mealService.UpdateMeal(c.Request.Context(), mealID, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, mealID, ok := h.mealIDs(c)
	if !ok {
		return
	}

	if err := h.mealService.DeleteMeal(c.Request.Context(), mealID, userID); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func (h *MealHandler) AddFavorite(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav, err := h.mealService.AddFavorite(c.Request.Context(), userID.(uuid.UUID), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

func (h *MealHandler) ListFavorites(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	favorites, err := h.mealService.ListFavorites(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *MealHandler) RemoveFavorite(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.mealService.RemoveFavorite(c.Request.Context(), userID.(uuid.UUID), c.Param("foodId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

func (h *MealHandler) CreateCustomFood(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateCustomFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.mealService.CreateCustomFood(c.Request.Context(), userID.(uuid.UUID), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create custom food"})
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (h *MealHandler) ListCustomFoods(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	foods, err := h.mealService.ListCustomFoods(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list custom foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"custom_foods": foods})
}

func (h *MealHandler) DeleteCustomFood(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	foodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	if err := h.mealService.DeleteCustomFood(c.Request.Context(), foodID, userID.(uuid.UUID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete custom food"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "custom food deleted"})
}

// mealIDs pulls the authenticated user and the :id path parameter.
func (h *MealHandler) mealIDs(c *gin.Context) (userID, mealID uuid.UUID, ok bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return uuid.Nil, uuid.Nil, false
	}

	return raw.(uuid.UUID), mealID, true
}
