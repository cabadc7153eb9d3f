package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"go.uber.org/zap"
)

const msgInventoryNotFound = "Inventory item not found"

type inventoryRequest struct {
	WarehouseID *uint    `json:"warehouse_id" validate:"required,gt=0"`
	ProductID   *uint    `json:"product_id" validate:"required,gt=0"`
	Quantity    *float64 `json:"quantity" validate:"required,gt=0"`
}

type InventoryHandler struct {
	Inventory *repository.InventoryRepository
}

func (h *InventoryHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rows, err := h.Inventory.List(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, msgInventoryNotFound)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) ListByWarehouse(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	warehouseID, err := pathID(c, "id", msgWarehouseNotFound)
	if err != nil {
		return err
	}
	rows, err := h.Inventory.ListByWarehouse(c.Request().Context(), userID, warehouseID)
	if err != nil {
		return failure(c, err, msgInventoryNotFound)
	}
	return c.JSON(http.StatusOK, rows)
}

// Create adds stock. An existing (warehouse, product) row absorbs the quantity
// and the response is 200; otherwise a row is created and the response is 201.
func (h *InventoryHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req inventoryRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	row, created, err := h.Inventory.Add(c.Request().Context(), userID, repository.StockAddition{
		WarehouseID: *req.WarehouseID,
		ProductID:   *req.ProductID,
		Quantity:    *req.Quantity,
	})
	if err != nil {
		return failure(c, err, msgInventoryNotFound)
	}
	prometheus.RecordInventoryAddition(created)

	if !created {
		log.Info("Inventory merged",
			zap.Uint("inventory_id", row.ID),
			zap.Float64("added", *req.Quantity),
			zap.Float64("quantity", row.Quantity))
		prometheus.RecordOperation("inventory", "update")
		return c.JSON(http.StatusOK, echo.Map{
			"message":   "Inventory updated successfully",
			"inventory": row,
		})
	}

	log.Info("Inventory created", zap.Uint("inventory_id", row.ID))
	prometheus.RecordOperation("inventory", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Inventory created successfully",
		"inventory": row,
	})
}

func (h *InventoryHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgInventoryNotFound)
	if err != nil {
		return err
	}

	var req repository.InventoryPatch
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	row, err := h.Inventory.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return failure(c, err, msgInventoryNotFound)
	}

	prometheus.RecordOperation("inventory", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Inventory updated successfully",
		"inventory": row,
	})
}

func (h *InventoryHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgInventoryNotFound)
	if err != nil {
		return err
	}

	if err := h.Inventory.Delete(c.Request().Context(), userID, id); err != nil {
		return failure(c, err, msgInventoryNotFound)
	}

	prometheus.RecordOperation("inventory", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Inventory deleted successfully"})
}
