package repository

import (
	"context"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"gorm.io/gorm"
)

type WarehousePatch struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) List(ctx context.Context, userID uint) ([]model.Warehouse, error) {
	defer prometheus.TrackDBOperation("query")()

	warehouses := []model.Warehouse{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&warehouses).Error
	return warehouses, err
}

func (r *WarehouseRepository) Create(ctx context.Context, userID uint, w *model.Warehouse) error {
	defer prometheus.TrackDBOperation("insert")()

	w.ID = 0
	w.UserID = userID
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WarehouseRepository) Update(ctx context.Context, userID, id uint, patch WarehousePatch) (*model.Warehouse, error) {
	defer prometheus.TrackDBOperation("update")()

	var w model.Warehouse
	if err := owned(ctx, r.db, userID, id, &w); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if err := r.db.WithContext(ctx).Save(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// Delete removes the warehouse together with every inventory row stored in it.
func (r *WarehouseRepository) Delete(ctx context.Context, userID, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND warehouse_id = ?", userID, id).Delete(&model.Inventory{}).Error; err != nil {
			return err
		}
		return deleteOwned(ctx, tx, userID, id, &model.Warehouse{})
	})
}
