package repository

import (
	"context"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpensePatch lists the expense fields that can change; the date is fixed at creation.
type ExpensePatch struct {
	Category      *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Vendor        *string          `json:"vendor" validate:"omitempty,max=200"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,max=50"`
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// List returns the account's expenses, newest first.
func (r *ExpenseRepository) List(ctx context.Context, userID uint) ([]model.Expense, error) {
	defer prometheus.TrackDBOperation("query")()

	expenses := []model.Expense{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC").Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Create(ctx context.Context, userID uint, e *model.Expense) error {
	defer prometheus.TrackDBOperation("insert")()

	var err error
	if e.Amount, err = money("amount", e.Amount); err != nil {
		return err
	}
	e.ID = 0
	e.UserID = userID
	e.Date = e.Date.UTC()
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) Update(ctx context.Context, userID, id uint, patch ExpensePatch) (*model.Expense, error) {
	defer prometheus.TrackDBOperation("update")()

	var e model.Expense
	if err := owned(ctx, r.db, userID, id, &e); err != nil {
		return nil, err
	}

	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Amount != nil {
		amount, err := money("amount", *patch.Amount)
		if err != nil {
			return nil, err
		}
		e.Amount = amount
	}
	if patch.Vendor != nil {
		e.Vendor = *patch.Vendor
	}
	if patch.PaymentMethod != nil {
		e.PaymentMethod = *patch.PaymentMethod
	}

	if err := r.db.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	return deleteOwned(ctx, r.db, userID, id, &model.Expense{})
}
