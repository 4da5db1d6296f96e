package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bytetrack/backend/config"
	"github.com/bytetrack/backend/internal/api"
	"github.com/bytetrack/backend/internal/testhelpers"
	"github.com/bytetrack/backend/internal/types"
)

// emptyProvider satisfies the remote lookup contract with no results.
type emptyProvider struct{}

func (emptyProvider) Search(ctx context.Context, query string, page, pageSize int) (types.SearchResult, error) {
	return types.SearchResult{Foods: []types.FoodItem{}, Total: 0, Page: page, HasMore: false}, nil
}

func (emptyProvider) Barcode(ctx context.Context, barcode string) (*types.FoodItem, error) {
	return nil, fmt.Errorf("no product found for barcode %q", barcode)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)

	router := gin.New()
	api.SetupAPI(router, api.Deps{
		DB:       db,
		Cfg:      &config.Config{JWTSecret: testhelpers.TestJWTSecret},
		Provider: emptyProvider{},
	})
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(testhelpers.JSONMarshal(t, body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	payload := types.RegisterRequest{Name: "Somchai", Email: "somchai@example.com", Password: "secret-password"}

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["user_id"])

	// duplicate email conflicts
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	register := types.RegisterRequest{Name: "Somchai", Email: "somchai@example.com", Password: "secret-password"}
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", register)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{
		Email: "somchai@example.com", Password: "secret-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{
		Email: "somchai@example.com", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{
		"/api/v1/onboarding/status",
		"/api/v1/foods/search?q=curry",
		"/api/v1/meals",
		"/api/v1/dashboard/summary",
	} {
		w := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestOnboardingFlow(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	// not onboarded yet
	w := doJSON(t, router, http.MethodGet, "/api/v1/onboarding/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["completed_onboarding"])

	biometrics := types.BiometricProfile{
		Age:           25,
		Sex:           types.SexMale,
		Height:        175,
		Weight:        70,
		ActivityLevel: types.ActivityModerate,
		Goal:          types.GoalLose,
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/onboarding", token, biometrics)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.OnboardingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2094, resp.Targets.TargetCalories)
	assert.Equal(t, 209, resp.Targets.MacroTargets.Carbs.Grams)

	w = doJSON(t, router, http.MethodGet, "/api/v1/onboarding/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["completed_onboarding"])
}

func TestOnboardingRejectsBadBiometrics(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/onboarding", token, map[string]interface{}{
		"age": 12, "sex": "male", "height": 175, "weight": 70,
		"activity_level": "moderate", "goal": "lose",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodSearchEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	w := doJSON(t, router, http.MethodGet, "/api/v1/foods/search?q=curry", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Foods, 2)
	assert.Equal(t, "th_3", result.Foods[0].ID)

	// nonexistent query with the remote disabled: empty but well-formed
	w = doJSON(t, router, http.MethodGet, "/api/v1/foods/search?q=xyzzznonexistent&include_api=false", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.Foods)
	assert.Equal(t, 0, result.Total)
	assert.False(t, result.HasMore)
}

func TestFoodCategoriesAndLocalLookup(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	w := doJSON(t, router, http.MethodGet, "/api/v1/foods/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/foods/local/th_4", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item types.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "Tom Yum Goong", item.NameEn)

	w = doJSON(t, router, http.MethodGet, "/api/v1/foods/local/th_999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBarcodeEndpointNotFound(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	w := doJSON(t, router, http.MethodGet, "/api/v1/foods/barcode/0000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServingEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/foods/serving", token, map[string]interface{}{
		"food": types.FoodItem{
			ID:   "th_2",
			Name: "ผัดไทย",
			Nutrition: types.NutritionInfo{
				Calories: 400, Protein: 15, Carbs: 55, Fat: 14,
				ServingSize: 300, ServingUnit: "g",
			},
		},
		"servings": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var n types.NutritionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &n))
	assert.Equal(t, 800, n.Calories)
	assert.InDelta(t, 30.0, n.Protein, 0.001)
}

func TestMealLifecycleEndpoints(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/meals", token, map[string]interface{}{
		"name": "ผัดไทย", "name_en": "Pad Thai", "meal_type": "lunch",
		"calories": 400, "protein": 15, "carbs": 55, "fat": 14,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	mealID := decode(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodGet, "/api/v1/meals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/meals/"+mealID, token, map[string]interface{}{
		"calories": 480,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/meals/"+mealID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/meals/"+mealID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMealRejectsBadMealType(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/meals", token, map[string]interface{}{
		"name": "ผัดไทย", "meal_type": "brunch", "calories": 400,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	router, db := setupTestRouter(t)
	userID, token := testhelpers.CreateTestUserAndToken(t, db)
	testhelpers.CreateTestProfile(t, db, userID)

	w := doJSON(t, router, http.MethodPost, "/api/v1/meals", token, map[string]interface{}{
		"name": "ผัดไทย", "meal_type": "lunch", "calories": 400,
		"date": "2026-03-14T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/summary?date=2026-03-14", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	consumed := body["consumed"].(map[string]interface{})
	assert.Equal(t, float64(400), consumed["calories"])
	assert.NotNil(t, body["targets"])
	assert.NotNil(t, body["remaining_calories"])
	assert.NotNil(t, body["bmi"])
}
