package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetrack/backend/config"
	"github.com/bytetrack/backend/internal/api"
	"github.com/bytetrack/backend/internal/router"
	"github.com/bytetrack/backend/internal/testhelpers"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := router.SetupRouter(api.Deps{
		DB:  testhelpers.SetupTestDatabase(t),
		Cfg: &config.Config{JWTSecret: testhelpers.TestJWTSecret},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestUnknownRouteIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := router.SetupRouter(api.Deps{
		DB:  testhelpers.SetupTestDatabase(t),
		Cfg: &config.Config{JWTSecret: testhelpers.TestJWTSecret},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
