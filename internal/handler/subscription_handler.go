package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"go.uber.org/zap"
)

const msgSubscriptionNotFound = "Subscription not found"

type subscriptionRequest struct {
	CustomerName string   `json:"customer_name" validate:"required,max=100"`
	Phone        string   `json:"phone" validate:"max=20"`
	Email        string   `json:"email" validate:"max=120"`
	Address      string   `json:"address"`
	ProductID    *uint    `json:"product_id" validate:"required,gt=0"`
	Quantity     *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Frequency    string   `json:"frequency" validate:"max=50"`
	SupplyDays   []string `json:"supply_days"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
}

type subscriptionUpdateRequest struct {
	repository.SubscriptionPatch
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type SubscriptionHandler struct {
	Subscriptions *repository.SubscriptionRepository
}

func (h *SubscriptionHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	subs, err := h.Subscriptions.List(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}
	return c.JSON(http.StatusOK, subs)
}

func (h *SubscriptionHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req subscriptionRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	start, err := optionalDate(req.StartDate, "start_date")
	if err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}
	end, err := optionalDate(req.EndDate, "end_date")
	if err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}

	sub := model.Subscription{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		ProductID:    *req.ProductID,
		Quantity:     req.Quantity,
		Frequency:    req.Frequency,
		SupplyDays:   model.DayList(req.SupplyDays),
		StartDate:    start,
		EndDate:      end,
		Status:       model.StatusActive,
	}
	if err := h.Subscriptions.Create(c.Request().Context(), userID, &sub); err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}

	logger.FromContext(c).Info("Subscription created",
		zap.Uint("subscription_id", sub.ID),
		zap.Strings("supply_days", sub.SupplyDays))
	prometheus.RecordOperation("subscription", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message":      "Subscription created successfully",
		"subscription": sub,
	})
}

func (h *SubscriptionHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgSubscriptionNotFound)
	if err != nil {
		return err
	}

	var req subscriptionUpdateRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	patch := req.SubscriptionPatch
	if patch.StartDate, err = optionalDate(req.StartDate, "start_date"); err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}
	if patch.EndDate, err = optionalDate(req.EndDate, "end_date"); err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}

	sub, err := h.Subscriptions.Update(c.Request().Context(), userID, id, patch)
	if err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}

	prometheus.RecordOperation("subscription", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Subscription updated successfully",
		"subscription": sub,
	})
}

func (h *SubscriptionHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgSubscriptionNotFound)
	if err != nil {
		return err
	}

	if err := h.Subscriptions.Delete(c.Request().Context(), userID, id); err != nil {
		return failure(c, err, msgSubscriptionNotFound)
	}

	prometheus.RecordOperation("subscription", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Subscription deleted successfully"})
}
