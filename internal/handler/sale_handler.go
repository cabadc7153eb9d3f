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

const msgSaleNotFound = "Sale not found"

type saleRequest struct {
	Date          *string          `json:"date"`
	Type          string           `json:"type" validate:"required"`
	CustomerName  string           `json:"customer_name" validate:"max=100"`
	ShopName      string           `json:"shop_name" validate:"max=200"`
	ShopAddress   string           `json:"shop_address"`
	ContactNumber string           `json:"contact_number" validate:"max=20"`
	ProductID     *uint            `json:"product_id" validate:"omitempty,gt=0"`
	Quantity      *float64         `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	Total         *decimal.Decimal `json:"total" validate:"required"`
	PaymentMethod string           `json:"payment_method" validate:"max=50"`
	Notes         string           `json:"notes"`
}

type SaleHandler struct {
	Sales *repository.SaleRepository
}

func (h *SaleHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	sales, err := h.Sales.List(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, msgSaleNotFound)
	}
	return c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req saleRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	if req.Total.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields: total")
	}

	saleType := strings.ToLower(strings.TrimSpace(req.Type))
	if saleType != model.SaleTypeRetail && saleType != model.SaleTypeWholesale {
		return echo.NewHTTPError(http.StatusBadRequest, "type must be retail or wholesale")
	}

	date := time.Now()
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		if date, err = parseDate(*req.Date); err != nil {
			return failure(c, err, msgSaleNotFound)
		}
	}

	sale := model.Sale{
		Date:          date,
		Type:          saleType,
		CustomerName:  req.CustomerName,
		ShopName:      req.ShopName,
		ShopAddress:   req.ShopAddress,
		ContactNumber: req.ContactNumber,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Total:         *req.Total,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.UnitPrice != nil {
		sale.UnitPrice = decimal.NewNullDecimal(*req.UnitPrice)
	}

	if err := h.Sales.Create(c.Request().Context(), userID, &sale); err != nil {
		return failure(c, err, msgSaleNotFound)
	}

	logger.FromContext(c).Info("Sale recorded",
		zap.Uint("sale_id", sale.ID),
		zap.String("type", sale.Type),
		zap.String("total", sale.Total.String()))
	prometheus.RecordOperation("sale", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Sale created successfully",
		"sale":    sale,
	})
}

// Update changes customer_name, shop_name, quantity and total only.
func (h *SaleHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgSaleNotFound)
	if err != nil {
		return err
	}

	var req repository.SalePatch
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	sale, err := h.Sales.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return failure(c, err, msgSaleNotFound)
	}

	prometheus.RecordOperation("sale", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Sale updated successfully",
		"sale":    sale,
	})
}

func (h *SaleHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgSaleNotFound)
	if err != nil {
		return err
	}

	if err := h.Sales.Delete(c.Request().Context(), userID, id); err != nil {
		return failure(c, err, msgSaleNotFound)
	}

	prometheus.RecordOperation("sale", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Sale deleted successfully"})
}
