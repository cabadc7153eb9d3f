package repository

import (
	"context"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WholesaleCustomerPatch struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson      *string          `json:"contact_person" validate:"omitempty,max=100"`
	Phone              *string          `json:"phone" validate:"omitempty,min=1,max=20"`
	Email              *string          `json:"email" validate:"omitempty,max=120"`
	Address            *string          `json:"address"`
	CreditLimit        *decimal.Decimal `json:"credit_limit"`
	OutstandingBalance *decimal.Decimal `json:"outstanding_balance"`
	Status             *string          `json:"status" validate:"omitempty,min=1,max=20"`
}

type WholesaleCustomerRepository struct {
	db *gorm.DB
}

func NewWholesaleCustomerRepository(db *gorm.DB) *WholesaleCustomerRepository {
	return &WholesaleCustomerRepository{db: db}
}

func (r *WholesaleCustomerRepository) List(ctx context.Context, userID uint) ([]model.WholesaleCustomer, error) {
	defer prometheus.TrackDBOperation("query")()

	customers := []model.WholesaleCustomer{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&customers).Error
	return customers, err
}

func (r *WholesaleCustomerRepository) Create(ctx context.Context, userID uint, c *model.WholesaleCustomer) error {
	defer prometheus.TrackDBOperation("insert")()

	var err error
	if c.CreditLimit, err = money("credit_limit", c.CreditLimit); err != nil {
		return err
	}
	if c.OutstandingBalance, err = cents("outstanding_balance", c.OutstandingBalance); err != nil {
		return err
	}
	c.ID = 0
	c.UserID = userID
	if c.Status == "" {
		c.Status = model.StatusActive
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *WholesaleCustomerRepository) Update(ctx context.Context, userID, id uint, patch WholesaleCustomerPatch) (*model.WholesaleCustomer, error) {
	defer prometheus.TrackDBOperation("update")()

	var c model.WholesaleCustomer
	if err := owned(ctx, r.db, userID, id, &c); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.ContactPerson != nil {
		c.ContactPerson = *patch.ContactPerson
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.CreditLimit != nil {
		limit, err := money("credit_limit", *patch.CreditLimit)
		if err != nil {
			return nil, err
		}
		c.CreditLimit = limit
	}
	if patch.OutstandingBalance != nil {
		balance, err := cents("outstanding_balance", *patch.OutstandingBalance)
		if err != nil {
			return nil, err
		}
		c.OutstandingBalance = balance
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}

	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *WholesaleCustomerRepository) Delete(ctx context.Context, userID, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	return deleteOwned(ctx, r.db, userID, id, &model.WholesaleCustomer{})
}
