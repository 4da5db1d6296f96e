package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bytetrack/backend/internal/api"
	"github.com/bytetrack/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(deps api.Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok"}

		if deps.DB != nil {
			sqlDB, err := deps.DB.DB()
			if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
		}

		c.JSON(http.StatusOK, status)
	})

	api.SetupAPI(router, deps)

	return router
}
