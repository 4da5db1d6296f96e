package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bytetrack/backend/internal/catalog"
	"github.com/bytetrack/backend/internal/middleware"
	"github.com/bytetrack/backend/internal/service"
	"github.com/bytetrack/backend/internal/types"
)

// FoodHandler handles food search and lookup requests.
type FoodHandler struct {
	foodService service.IFoodService
	authService service.IAuthService
	rateLimiter *middleware.RateLimiter
}

func NewFoodHandler(foodService service.IFoodService, authService service.IAuthService, rateLimiter *middleware.RateLimiter) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	foods.Use(middleware.AuthMiddleware(h.authService))
	{
		search := foods.Group("")
		if h.rateLimiter != nil {
			search.Use(h.rateLimiter.RateLimitMiddleware())
		}
		search.GET("/search", h.Search)
		search.GET("/barcode/:code", h.Barcode)

		foods.GET("/categories", h.Categories)
		foods.GET("/local", h.ListLocal)
		foods.GET("/local/:id", h.GetLocal)
		foods.POST("/serving", h.Serving)
	}
}

// Search runs the combined local+remote food search. It always answers
// 200 with a well-formed result; remote trouble only shrinks the page.
func (h *FoodHandler) Search(c *gin.Context) {
	query := c.Query("q")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	includeAPI := c.DefaultQuery("include_api", "true") != "false"

	result := h.foodService.SearchFoods(c.Request.Context(), query, types.SearchOptions{
		Category:   c.Query("category"),
		IncludeAPI: includeAPI,
		Page:       page,
		PageSize:   pageSize,
	})

	c.JSON(http.StatusOK, result)
}

func (h *FoodHandler) Barcode(c *gin.Context) {
	item, err := h.foodService.LookupBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FoodHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.foodService.Categories()})
}

func (h *FoodHandler) ListLocal(c *gin.Context) {
	foods := h.foodService.SearchLocal("", c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"foods": foods, "total": len(foods)})
}

func (h *FoodHandler) GetLocal(c *gin.Context) {
	item, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ServingRequest scales a food's nutrition to a serving count.
type ServingRequest struct {
	Food     types.FoodItem `json:"food" binding:"required"`
	Servings float64        `json:"servings" binding:"required,gt=0"`
}

func (h *FoodHandler) Serving(c *gin.Context) {
	var req ServingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.foodService.ServingNutrition(req.Food, req.Servings))
}
