package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultUnit = "box"

func init() {
	// money goes over the wire as a JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is something the farm sells.
type Product struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"-" gorm:"not null;index"`
	Name           string          `json:"name" gorm:"type:varchar(100);not null"`
	Unit           string          `json:"unit" gorm:"type:varchar(20);default:box"`
	RetailPrice    decimal.Decimal `json:"retail_price" gorm:"type:decimal(12,2);not null"`
	WholesalePrice decimal.Decimal `json:"wholesale_price" gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Warehouse is a storage location.
type Warehouse struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
