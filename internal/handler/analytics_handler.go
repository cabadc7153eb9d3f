package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/internal/service"
)

type AnalyticsHandler struct {
	Analytics *service.AnalyticsService
}

func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	metrics, err := h.Analytics.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, MsgNotFound)
	}
	return c.JSON(http.StatusOK, metrics)
}
