package repository

import (
	"context"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalePatch lists the only sale fields that can change after creation.
type SalePatch struct {
	CustomerName *string          `json:"customer_name" validate:"omitempty,max=100"`
	ShopName     *string          `json:"shop_name" validate:"omitempty,max=200"`
	Quantity     *float64         `json:"quantity" validate:"omitempty,gte=0"`
	Total        *decimal.Decimal `json:"total"`
}

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// List returns the account's sales, newest first.
func (r *SaleRepository) List(ctx context.Context, userID uint) ([]model.Sale, error) {
	defer prometheus.TrackDBOperation("query")()

	sales := []model.Sale{}
	err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).Order("date DESC").Order("id DESC").Find(&sales).Error
	return sales, err
}

func (r *SaleRepository) Create(ctx context.Context, userID uint, s *model.Sale) error {
	defer prometheus.TrackDBOperation("insert")()

	var err error
	if s.Total, err = money("total", s.Total); err != nil {
		return err
	}
	if s.UnitPrice.Valid {
		if s.UnitPrice.Decimal, err = money("unit_price", s.UnitPrice.Decimal); err != nil {
			return err
		}
	}

	s.ID = 0
	s.UserID = userID
	s.Date = s.Date.UTC()
	s.Product = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.ProductID != nil {
			ok, err := ownsRow(ctx, tx, userID, *s.ProductID, &model.Product{})
			if err != nil {
				return err
			}
			if !ok {
				return invalid("product_id", "product not found")
			}
		}
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return tx.Preload("Product").First(s, s.ID).Error
	})
}

func (r *SaleRepository) Update(ctx context.Context, userID, id uint, patch SalePatch) (*model.Sale, error) {
	defer prometheus.TrackDBOperation("update")()

	var s model.Sale
	if err := owned(ctx, r.db.Preload("Product"), userID, id, &s); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.CustomerName != nil {
		s.CustomerName = *patch.CustomerName
		updates["customer_name"] = s.CustomerName
	}
	if patch.ShopName != nil {
		s.ShopName = *patch.ShopName
		updates["shop_name"] = s.ShopName
	}
	if patch.Quantity != nil {
		s.Quantity = patch.Quantity
		updates["quantity"] = *s.Quantity
	}
	if patch.Total != nil {
		total, err := money("total", *patch.Total)
		if err != nil {
			return nil, err
		}
		s.Total = total
		updates["total"] = s.Total
	}
	if len(updates) == 0 {
		return &s, nil
	}

	if err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("id = ? AND user_id = ?", id, userID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepository) Delete(ctx context.Context, userID, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	return deleteOwned(ctx, r.db, userID, id, &model.Sale{})
}
