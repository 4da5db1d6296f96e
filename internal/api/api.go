package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bytetrack/backend/config"
	"github.com/bytetrack/backend/internal/middleware"
	"github.com/bytetrack/backend/internal/provider/openfoodfacts"
	"github.com/bytetrack/backend/internal/service"
)

// Deps carries the shared infrastructure handed to SetupAPI.
type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client
	S3       *config.S3Config
	Cfg      *config.Config
	Provider service.FoodProvider
}

// SetupAPI wires services and handlers onto the router.
func SetupAPI(router *gin.Engine, deps Deps) {
	v1 := router.Group("/api/v1")
	{
		provider := deps.Provider
		if provider == nil {
			var opts []openfoodfacts.Option
			if deps.Cfg != nil && deps.Cfg.OpenFoodFactsURL != "" {
				opts = append(opts, openfoodfacts.WithBaseURL(deps.Cfg.OpenFoodFactsURL))
			}
			provider = openfoodfacts.NewClient(opts...)
		}

		// Initialize services
		jwtSecret := ""
		if deps.Cfg != nil {
			jwtSecret = deps.Cfg.JWTSecret
		}
		calorieService := service.NewCalorieService()
		authService := service.NewAuthService(deps.DB, jwtSecret)
		profileService := service.NewProfileService(deps.DB, calorieService)
		mealService := service.NewMealService(deps.DB)
		foodService := service.NewFoodService(provider, deps.Redis)

		var imageService *service.ImageService
		if deps.S3 != nil {
			imageService = service.NewImageService(deps.S3)
		}

		var searchLimiter *middleware.RateLimiter
		if deps.Redis != nil {
			searchLimiter = middleware.NewFoodSearchRateLimiter(deps.Redis)
		}

		// Initialize handlers
		authHandler := NewAuthHandler(authService)
		onboardingHandler := NewOnboardingHandler(profileService, authService, imageService)
		foodHandler := NewFoodHandler(foodService, authService, searchLimiter)
		mealHandler := NewMealHandler(mealService, authService)
		dashboardHandler := NewDashboardHandler(mealService, profileService, authService, calorieService)

		// Register routes
		authHandler.RegisterRoutes(v1)
		onboardingHandler.RegisterRoutes(v1)
		foodHandler.RegisterRoutes(v1)
		mealHandler.RegisterRoutes(v1)
		dashboardHandler.RegisterRoutes(v1)
	}
}
