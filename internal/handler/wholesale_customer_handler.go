package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const msgCustomerNotFound = "Wholesale customer not found"

type wholesaleCustomerRequest struct {
	Name               string           `json:"name" validate:"required,max=200"`
	ContactPerson      string           `json:"contact_person" validate:"max=100"`
	Phone              string           `json:"phone" validate:"required,max=20"`
	Email              string           `json:"email" validate:"max=120"`
	Address            string           `json:"address"`
	CreditLimit        *decimal.Decimal `json:"credit_limit"`
	OutstandingBalance *decimal.Decimal `json:"outstanding_balance"`
	Status             string           `json:"status" validate:"max=20"`
}

type WholesaleCustomerHandler struct {
	Customers *repository.WholesaleCustomerRepository
}

func (h *WholesaleCustomerHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	customers, err := h.Customers.List(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, msgCustomerNotFound)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *WholesaleCustomerHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req wholesaleCustomerRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	customer := model.WholesaleCustomer{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Status:        req.Status,
	}
	if req.CreditLimit != nil {
		customer.CreditLimit = *req.CreditLimit
	}
	if req.OutstandingBalance != nil {
		customer.OutstandingBalance = *req.OutstandingBalance
	}

	if err := h.Customers.Create(c.Request().Context(), userID, &customer); err != nil {
		return failure(c, err, msgCustomerNotFound)
	}

	logger.FromContext(c).Info("Wholesale customer created", zap.Uint("customer_id", customer.ID))
	prometheus.RecordOperation("wholesale_customer", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Wholesale customer created successfully",
		"customer": customer,
	})
}

func (h *WholesaleCustomerHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgCustomerNotFound)
	if err != nil {
		return err
	}

	var req repository.WholesaleCustomerPatch
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	customer, err := h.Customers.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return failure(c, err, msgCustomerNotFound)
	}

	prometheus.RecordOperation("wholesale_customer", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Wholesale customer updated successfully",
		"customer": customer,
	})
}

func (h *WholesaleCustomerHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgCustomerNotFound)
	if err != nil {
		return err
	}

	if err := h.Customers.Delete(c.Request().Context(), userID, id); err != nil {
		return failure(c, err, msgCustomerNotFound)
	}

	prometheus.RecordOperation("wholesale_customer", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Wholesale customer deleted successfully"})
}
