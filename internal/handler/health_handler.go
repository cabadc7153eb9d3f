package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/pkg/database"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB *gorm.DB
}

// HealthCheck reports liveness; ?check=db also pings the database.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if c.QueryParam("check") == "db" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, h.DB); err != nil {
			logger.FromContext(c).Error("Database health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status":   "unhealthy",
				"message":  "Database is unreachable",
				"database": "down",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"status":   "healthy",
			"message":  "Mushroom CRM API is running",
			"database": "up",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"message": "Mushroom CRM API is running",
	})
}
