package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bytetrack/backend/internal/models"
	"github.com/bytetrack/backend/internal/types"
)

// ErrProfileNotFound is returned when a user has not completed
// onboarding yet.
var ErrProfileNotFound = errors.New("profile not found")

var _ IProfileService = (*ProfileService)(nil)

// ProfileService persists biometric profiles and their derived energy
// targets. Targets are always recomputed from the submitted biometrics;
// stored target columns are never edited directly.
type ProfileService struct {
	db      *gorm.DB
	calorie *CalorieService
}

func NewProfileService(db *gorm.DB, calorie *CalorieService) *ProfileService {
	return &ProfileService{
		db:      db,
		calorie: calorie,
	}
}

// CompleteOnboarding computes targets for the submitted biometrics and
// creates the user's profile. Calculation errors block persistence.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, biometrics types.BiometricProfile) (*types.OnboardingResponse, error) {
	targets, err := s.calorie.CalculateTargets(biometrics)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		ID:            uuid.New(),
		UserID:        userID,
		Age:           biometrics.Age,
		Sex:           biometrics.Sex,
		Height:        biometrics.Height,
		Weight:        biometrics.Weight,
		GoalWeight:    biometrics.GoalWeight,
		ActivityLevel: biometrics.ActivityLevel,
		Goal:          biometrics.Goal,
	}
	profile.ApplyTargets(targets)

	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}

	return &types.OnboardingResponse{Profile: biometrics, Targets: targets}, nil
}

// GetProfile retrieves a user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile replaces the biometrics and recomputes all targets.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, biometrics types.BiometricProfile) (*types.OnboardingResponse, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets, err := s.calorie.CalculateTargets(biometrics)
	if err != nil {
		return nil, err
	}

	profile.Age = biometrics.Age
	profile.Sex = biometrics.Sex
	profile.Height = biometrics.Height
	profile.Weight = biometrics.Weight
	profile.GoalWeight = biometrics.GoalWeight
	profile.ActivityLevel = biometrics.ActivityLevel
	profile.Goal = biometrics.Goal
	profile.ApplyTargets(targets)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}

	return &types.OnboardingResponse{Profile: biometrics, Targets: targets}, nil
}

// SetProfilePicture stores the uploaded picture URL.
func (s *ProfileService) SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) error {
	result := s.db.WithContext(ctx).Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("profile_picture_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
