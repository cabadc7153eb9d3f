package repository

import (
	"context"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductPatch holds the product fields an update may change; nil means unchanged.
type ProductPatch struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Unit           *string          `json:"unit" validate:"omitempty,min=1,max=20"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, userID uint) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")()

	products := []model.Product{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(ctx context.Context, userID uint, p *model.Product) error {
	defer prometheus.TrackDBOperation("insert")()

	if err := normalizePrices(p); err != nil {
		return err
	}
	p.ID = 0
	p.UserID = userID
	if p.Unit == "" {
		p.Unit = model.DefaultUnit
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) Update(ctx context.Context, userID, id uint, patch ProductPatch) (*model.Product, error) {
	defer prometheus.TrackDBOperation("update")()

	var p model.Product
	if err := owned(ctx, r.db, userID, id, &p); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.RetailPrice != nil {
		p.RetailPrice = *patch.RetailPrice
	}
	if patch.WholesalePrice != nil {
		p.WholesalePrice = *patch.WholesalePrice
	}
	if err := normalizePrices(&p); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the product and its inventory rows. Sales and subscriptions
// keep their product id.
func (r *ProductRepository) Delete(ctx context.Context, userID, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteOwned(ctx, tx, userID, id, &model.Product{}); err != nil {
			return err
		}
		return tx.Where("user_id = ? AND product_id = ?", userID, id).Delete(&model.Inventory{}).Error
	})
}

func normalizePrices(p *model.Product) (err error) {
	if p.RetailPrice, err = money("retail_price", p.RetailPrice); err != nil {
		return err
	}
	p.WholesalePrice, err = money("wholesale_price", p.WholesalePrice)
	return err
}
