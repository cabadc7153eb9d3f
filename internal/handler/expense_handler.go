package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const msgExpenseNotFound = "Expense not found"

type expenseRequest struct {
	Date          *string          `json:"date"`
	Category      string           `json:"category" validate:"required,max=100"`
	Description   string           `json:"description"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	Vendor        string           `json:"vendor" validate:"max=200"`
	PaymentMethod string           `json:"payment_method" validate:"max=50"`
}

type ExpenseHandler struct {
	Expenses *repository.ExpenseRepository
}

func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	expenses, err := h.Expenses.List(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, msgExpenseNotFound)
	}
	return c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req expenseRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	date := time.Now()
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		if date, err = parseDate(*req.Date); err != nil {
			return failure(c, err, msgExpenseNotFound)
		}
	}

	expense := model.Expense{
		Date:          date,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        *req.Amount,
		Vendor:        req.Vendor,
		PaymentMethod: req.PaymentMethod,
	}
	if err := h.Expenses.Create(c.Request().Context(), userID, &expense); err != nil {
		return failure(c, err, msgExpenseNotFound)
	}

	logger.FromContext(c).Info("Expense recorded",
		zap.Uint("expense_id", expense.ID),
		zap.String("category", expense.Category))
	prometheus.RecordOperation("expense", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Expense created successfully",
		"expense": expense,
	})
}

// Update never moves an expense to another date.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgExpenseNotFound)
	if err != nil {
		return err
	}

	var req repository.ExpensePatch
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	expense, err := h.Expenses.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return failure(c, err, msgExpenseNotFound)
	}

	prometheus.RecordOperation("expense", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgExpenseNotFound)
	if err != nil {
		return err
	}

	if err := h.Expenses.Delete(c.Request().Context(), userID, id); err != nil {
		return failure(c, err, msgExpenseNotFound)
	}

	prometheus.RecordOperation("expense", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Expense deleted successfully"})
}
