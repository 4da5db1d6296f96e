package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bytetrack/backend/internal/middleware"
	"github.com/bytetrack/backend/internal/service"
	"github.com/bytetrack/backend/internal/types"
)

// OnboardingHandler handles onboarding and profile requests.
type OnboardingHandler struct {
	profileService service.IProfileService
	authService    service.IAuthService
	imageService   *service.ImageService
}

func NewOnboardingHandler(profileService service.IProfileService, authService service.IAuthService, imageService *service.ImageService) *OnboardingHandler {
	return &OnboardingHandler{
		profileService: profileService,
		authService:    authService,
		imageService:   imageService,
	}
}

func (h *OnboardingHandler) RegisterRoutes(router *gin.RouterGroup) {
	onboarding := router.Group("/onboarding")
	onboarding.Use(middleware.AuthMiddleware(h.authService))
	{
		onboarding.POST("", h.CompleteOnboarding)
		onboarding.GET("/status", h.GetStatus)
	}

	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.authService))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/picture", h.UploadPicture)
	}
}

// CompleteOnboarding validates the submitted biometrics, computes energy
// targets and persists both.
func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var biometrics types.BiometricProfile
	if err := c.ShouldBindJSON(&biometrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.profileService.CompleteOnboarding(c.Request.Context(), userID.(uuid.UUID), biometrics)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete onboarding"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetStatus reports whether the user has completed onboarding.
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	_, err := h.profileService.GetProfile(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"completed_onboarding": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get onboarding status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed_onboarding": true})
}

func (h *OnboardingHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile replaces the biometrics and recomputes targets.
func (h *OnboardingHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var biometrics types.BiometricProfile
	if err := c.ShouldBindJSON(&biometrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.profileService.UpdateProfile(c.Request.Context(), userID.(uuid.UUID), biometrics)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadPicture stores a profile picture in S3 and records its URL.
func (h *OnboardingHandler) UploadPicture(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads not configured"})
		return
	}

	file, header, err := c.Request.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing picture file"})
		return
	}
	defer file.Close()

	url, err := h.imageService.UploadProfilePicture(c.Request.Context(), userID.(uuid.UUID), header.Header.Get("Content-Type"), file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profileService.SetProfilePicture(c.Request.Context(), userID.(uuid.UUID), url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save picture"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_picture_url": url})
}
