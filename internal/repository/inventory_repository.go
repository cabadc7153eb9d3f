package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryPatch struct {
	Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
}

// StockAddition is a request to put quantity of a product into a warehouse.
type StockAddition struct {
	WarehouseID uint
	ProductID   uint
	Quantity    float64
}

type InventoryRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db, now: time.Now}
}

func (r *InventoryRepository) List(ctx context.Context, userID uint) ([]model.Inventory, error) {
	defer prometheus.TrackDBOperation("query")()

	rows := []model.Inventory{}
	err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).Order("id").Find(&rows).Error
	return rows, err
}

func (r *InventoryRepository) ListByWarehouse(ctx context.Context, userID, warehouseID uint) ([]model.Inventory, error) {
	defer prometheus.TrackDBOperation("query")()

	rows := []model.Inventory{}
	err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ? AND warehouse_id = ?", userID, warehouseID).Order("id").Find(&rows).Error
	return rows, err
}

// Add merges the quantity into the existing (warehouse, product) row or creates
// one. created reports which of the two happened.
func (r *InventoryRepository) Add(ctx context.Context, userID uint, in StockAddition) (row *model.Inventory, created bool, err error) {
	defer prometheus.TrackDBOperation("upsert")()

	if in.Quantity <= 0 {
		return nil, false, invalid("quantity", "must be greater than zero")
	}

	row, created, err = r.add(ctx, userID, in)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent request inserted the row first; this attempt now merges
		row, created, err = r.add(ctx, userID, in)
	}
	if err != nil {
		return nil, false, err
	}
	return row, created, nil
}

func (r *InventoryRepository) add(ctx context.Context, userID uint, in StockAddition) (*model.Inventory, bool, error) {
	var (
		row     model.Inventory
		created bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := ownsRow(ctx, tx, userID, in.WarehouseID, &model.Warehouse{}); err != nil {
			return err
		} else if !ok {
			return invalid("warehouse_id", "warehouse not found")
		}
		if ok, err := ownsRow(ctx, tx, userID, in.ProductID, &model.Product{}); err != nil {
			return err
		} else if !ok {
			return invalid("product_id", "product not found")
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND warehouse_id = ? AND product_id = ?", userID, in.WarehouseID, in.ProductID).
			First(&row).Error

		switch {
		case err == nil:
			row.Quantity += in.Quantity
			row.Date = r.now().UTC()
			if err := tx.Model(&row).Updates(map[string]interface{}{
				"quantity": row.Quantity,
				"date":     row.Date,
			}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = model.Inventory{
				UserID:      userID,
				WarehouseID: in.WarehouseID,
				ProductID:   in.ProductID,
				Quantity:    in.Quantity,
				Date:        r.now().UTC(),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		return tx.Preload("Product").First(&row, row.ID).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &row, created, nil
}

func (r *InventoryRepository) Update(ctx context.Context, userID, id uint, patch InventoryPatch) (*model.Inventory, error) {
	defer prometheus.TrackDBOperation("update")()

	var row model.Inventory
	if err := owned(ctx, r.db.Preload("Product"), userID, id, &row); err != nil {
		return nil, err
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, invalid("quantity", "must not be negative")
		}
		row.Quantity = *patch.Quantity
	}
	if err := r.db.WithContext(ctx).Model(&row).Update("quantity", row.Quantity).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, userID, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	return deleteOwned(ctx, r.db, userID, id, &model.Inventory{})
}
