package repository

import (
	"context"
	"errors"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when the email already belongs to an account.
var ErrEmailTaken = errors.New("email already registered")

type ProfilePatch struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	FarmName *string `json:"farm_name" validate:"omitempty,max=200"`
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")()

	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")()

	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// Create inserts the account unless the email is already registered.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	defer prometheus.TrackDBOperation("insert")()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		err := tx.Create(u).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	})
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, patch ProfilePatch) (*model.User, error) {
	defer prometheus.TrackDBOperation("update")()

	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.FarmName != nil {
		u.FarmName = *patch.FarmName
	}
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	defer prometheus.TrackDBOperation("update")()

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the account and every row it owns in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")()

	tables := []interface{}{
		&model.Inventory{},
		&model.Sale{},
		&model.Expense{},
		&model.Subscription{},
		&model.WholesaleCustomer{},
		&model.Product{},
		&model.Warehouse{},
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range tables {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
