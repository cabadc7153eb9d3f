package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row with the id exists under the caller's account.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a request that names something the caller cannot use.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// moneyLimit is the smallest magnitude a decimal(12,2) column cannot hold.
var moneyLimit = decimal.New(1, 10)

// money rounds a non-negative amount to cents.
func money(field string, d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return d, invalid(field, "must not be negative")
	}
	return cents(field, d)
}

// cents rounds a signed amount to cents and rejects what the column cannot store.
func cents(field string, d decimal.Decimal) (decimal.Decimal, error) {
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(moneyLimit) {
		return d, invalid(field, "must be less than 10000000000")
	}
	return d, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// owned loads the row with id that belongs to userID into dest.
func owned(ctx context.Context, db *gorm.DB, userID, id uint, dest interface{}) error {
	err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(dest).Error
	return notFound(err)
}

// deleteOwned removes the row with id that belongs to userID.
func deleteOwned(ctx context.Context, db *gorm.DB, userID, id uint, model interface{}) error {
	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func ownsRow(ctx context.Context, db *gorm.DB, userID, id uint, model interface{}) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ? AND user_id = ?", id, userID).Count(&count).Error
	return count > 0, err
}
