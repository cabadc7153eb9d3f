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

const msgProductNotFound = "Product not found"

type productRequest struct {
	Name           string           `json:"name" validate:"required,max=100"`
	Unit           string           `json:"unit" validate:"max=20"`
	RetailPrice    *decimal.Decimal `json:"retail_price" validate:"required"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price" validate:"required"`
}

type ProductHandler struct {
	Products *repository.ProductRepository
}

func (h *ProductHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	products, err := h.Products.List(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, msgProductNotFound)
	}

	logger.FromContext(c).Debug("Products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	product := model.Product{
		Name:           req.Name,
		Unit:           req.Unit,
		RetailPrice:    *req.RetailPrice,
		WholesalePrice: *req.WholesalePrice,
	}
	if err := h.Products.Create(c.Request().Context(), userID, &product); err != nil {
		return failure(c, err, msgProductNotFound)
	}

	log.Info("Product created", zap.Uint("product_id", product.ID), zap.String("name", product.Name))
	prometheus.RecordOperation("product", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgProductNotFound)
	if err != nil {
		return err
	}

	var req repository.ProductPatch
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	product, err := h.Products.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return failure(c, err, msgProductNotFound)
	}

	logger.FromContext(c).Info("Product updated", zap.Uint("product_id", id))
	prometheus.RecordOperation("product", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgProductNotFound)
	if err != nil {
		return err
	}

	if err := h.Products.Delete(c.Request().Context(), userID, id); err != nil {
		return failure(c, err, msgProductNotFound)
	}

	logger.FromContext(c).Info("Product deleted", zap.Uint("product_id", id))
	prometheus.RecordOperation("product", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
