package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bytetrack/backend/internal/middleware"
	"github.com/bytetrack/backend/internal/service"
)

// DashboardHandler serves the daily summary view.
type DashboardHandler struct {
	mealService    service.IMealService
	profileService service.IProfileService
	authService    service.IAuthService
	calorieService *service.CalorieService
}

func NewDashboardHandler(mealService service.IMealService, profileService service.IProfileService, authService service.IAuthService, calorieService *service.CalorieService) *DashboardHandler {
	return &DashboardHandler{
		mealService:    mealService,
		profileService: profileService,
		authService:    authService,
		calorieService: calorieService,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(h.authService))
	{
		dashboard.GET("/summary", h.Summary)
	}
}

// Summary returns consumed totals for the day against the user's targets.
// The date query parameter defaults to today.
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	totals, err := h.mealService.DailyTotals(c.Request.Context(), userID.(uuid.UUID), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute daily totals"})
		return
	}

	summary := gin.H{
		"date":     date.Format("2006-01-02"),
		"consumed": totals,
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if !errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
			return
		}
		// No onboarding yet, totals alone are still useful.
		c.JSON(http.StatusOK, summary)
		return
	}

	targets := profile.Targets()
	remaining := targets.TargetCalories - totals.Calories

	bmi := h.calorieService.CalculateBMI(profile.Weight, profile.Height)
	water := h.calorieService.WaterIntake(profile.Weight, profile.ActivityLevel)

	summary["targets"] = targets
	summary["remaining_calories"] = remaining
	summary["bmi"] = bmi
	summary["bmi_category"] = h.calorieService.BMICategory(bmi)
	summary["water_intake_liters"] = water

	c.JSON(http.StatusOK, summary)
}
