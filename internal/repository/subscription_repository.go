package repository

import (
	"context"
	"strings"
	"time"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"gorm.io/gorm"
)

type SubscriptionPatch struct {
	CustomerName *string    `json:"customer_name" validate:"omitempty,min=1,max=100"`
	Phone        *string    `json:"phone" validate:"omitempty,max=20"`
	Email        *string    `json:"email" validate:"omitempty,max=120"`
	Address      *string    `json:"address"`
	ProductID    *uint      `json:"product_id" validate:"omitempty,gt=0"`
	Quantity     *float64   `json:"quantity" validate:"omitempty,gte=0"`
	Frequency    *string    `json:"frequency" validate:"omitempty,max=50"`
	SupplyDays   *[]string  `json:"supply_days"`
	StartDate    *time.Time `json:"-"`
	EndDate      *time.Time `json:"-"`
	Status       *string    `json:"status" validate:"omitempty,min=1,max=20"`
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) List(ctx context.Context, userID uint) ([]model.Subscription, error) {
	defer prometheus.TrackDBOperation("query")()

	subs := []model.Subscription{}
	err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).Order("id").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) Create(ctx context.Context, userID uint, s *model.Subscription) error {
	defer prometheus.TrackDBOperation("insert")()

	if err := checkSubscription(s.SupplyDays, s.StartDate, s.EndDate); err != nil {
		return err
	}
	s.ID = 0
	s.UserID = userID
	s.Product = nil
	if s.Status == "" {
		s.Status = model.StatusActive
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := ownsRow(ctx, tx, userID, s.ProductID, &model.Product{})
		if err != nil {
			return err
		}
		if !ok {
			return invalid("product_id", "product not found")
		}
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return tx.Preload("Product").First(s, s.ID).Error
	})
}

func (r *SubscriptionRepository) Update(ctx context.Context, userID, id uint, patch SubscriptionPatch) (*model.Subscription, error) {
	defer prometheus.TrackDBOperation("update")()

	var s model.Subscription
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := owned(ctx, tx, userID, id, &s); err != nil {
			return err
		}

		if patch.CustomerName != nil {
			s.CustomerName = *patch.CustomerName
		}
		if patch.Phone != nil {
			s.Phone = *patch.Phone
		}
		if patch.Email != nil {
			s.Email = *patch.Email
		}
		if patch.Address != nil {
			s.Address = *patch.Address
		}
		if patch.ProductID != nil {
			ok, err := ownsRow(ctx, tx, userID, *patch.ProductID, &model.Product{})
			if err != nil {
				return err
			}
			if !ok {
				return invalid("product_id", "product not found")
			}
			s.ProductID = *patch.ProductID
		}
		if patch.Quantity != nil {
			s.Quantity = patch.Quantity
		}
		if patch.Frequency != nil {
			s.Frequency = *patch.Frequency
		}
		if patch.SupplyDays != nil {
			s.SupplyDays = model.DayList(*patch.SupplyDays)
		}
		if patch.StartDate != nil {
			s.StartDate = patch.StartDate
		}
		if patch.EndDate != nil {
			s.EndDate = patch.EndDate
		}
		if patch.Status != nil {
			s.Status = *patch.Status
		}
		if err := checkSubscription(s.SupplyDays, s.StartDate, s.EndDate); err != nil {
			return err
		}

		if err := tx.Omit("Product").Save(&s).Error; err != nil {
			return err
		}
		s.Product = nil
		return tx.Preload("Product").First(&s, s.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, userID, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	return deleteOwned(ctx, r.db, userID, id, &model.Subscription{})
}

func checkSubscription(days model.DayList, start, end *time.Time) error {
	for _, day := range days {
		if strings.TrimSpace(day) == "" || strings.Contains(day, ",") {
			return invalid("supply_days", "labels must be non-empty and must not contain commas")
		}
	}
	if start != nil && end != nil && end.Before(*start) {
		return invalid("end_date", "must not be before start_date")
	}
	return nil
}
