package testhelpers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bytetrack/backend/internal/models"
	"github.com/bytetrack/backend/internal/service"
	"github.com/bytetrack/backend/internal/types"
)

// TestJWTSecret is the signing key used by test auth services.
const TestJWTSecret = "test-jwt-secret"

// CreateTestUser creates a user with a bcrypt-hashed password.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        fmt.Sprintf("testuser+%s@example.com", uuid.New().String()),
		PasswordHash: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestUserAndToken creates a user and returns their ID with a
// valid JWT signed by TestJWTSecret.
func CreateTestUserAndToken(t *testing.T, db *gorm.DB) (uuid.UUID, string) {
	t.Helper()

	user := CreateTestUser(t, db)

	authService := service.NewAuthService(db, TestJWTSecret)
	token, err := authService.GenerateToken(&types.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
	})
	require.NoError(t, err)

	return user.ID, token
}

// CreateTestProfile stores an onboarded profile with computed targets
// for the given user.
func CreateTestProfile(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.UserProfile {
	t.Helper()

	profile := &models.UserProfile{
		ID:            uuid.New(),
		UserID:        userID,
		Age:           30,
		Sex:           types.SexMale,
		Height:        175,
		Weight:        70,
		ActivityLevel: types.ActivityModerate,
		Goal:          types.GoalLose,
	}

	calorie := service.NewCalorieService()
	targets, err := calorie.CalculateTargets(profile.Biometrics())
	require.NoError(t, err)
	profile.ApplyTargets(targets)

	require.NoError(t, db.Create(profile).Error)
	return profile
}

// JSONMarshal is a helper function to marshal JSON for testing
func JSONMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal JSON: %v", err)
	}
	return data
}
