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

const msgWarehouseNotFound = "Warehouse not found"

type warehouseRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type WarehouseHandler struct {
	Warehouses *repository.WarehouseRepository
}

func (h *WarehouseHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	warehouses, err := h.Warehouses.List(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, msgWarehouseNotFound)
	}
	return c.JSON(http.StatusOK, warehouses)
}

func (h *WarehouseHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req warehouseRequest
	if err := bindAndValidate(c, &req, "Warehouse name is required"); err != nil {
		return err
	}

	warehouse := model.Warehouse{Name: req.Name}
	if err := h.Warehouses.Create(c.Request().Context(), userID, &warehouse); err != nil {
		return failure(c, err, msgWarehouseNotFound)
	}

	logger.FromContext(c).Info("Warehouse created", zap.Uint("warehouse_id", warehouse.ID))
	prometheus.RecordOperation("warehouse", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Warehouse created successfully",
		"warehouse": warehouse,
	})
}

func (h *WarehouseHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgWarehouseNotFound)
	if err != nil {
		return err
	}

	var req repository.WarehousePatch
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	warehouse, err := h.Warehouses.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return failure(c, err, msgWarehouseNotFound)
	}

	prometheus.RecordOperation("warehouse", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Warehouse updated successfully",
		"warehouse": warehouse,
	})
}

// Delete removes the warehouse and the inventory stored in it.
func (h *WarehouseHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgWarehouseNotFound)
	if err != nil {
		return err
	}

	if err := h.Warehouses.Delete(c.Request().Context(), userID, id); err != nil {
		return failure(c, err, msgWarehouseNotFound)
	}

	logger.FromContext(c).Info("Warehouse deleted", zap.Uint("warehouse_id", id))
	prometheus.RecordOperation("warehouse", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Warehouse deleted successfully"})
}
