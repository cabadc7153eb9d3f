package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SaleTypeRetail    = "retail"
	SaleTypeWholesale = "wholesale"
)

type Sale struct {
	ID            uint                `json:"id" gorm:"primaryKey"`
	UserID        uint                `json:"-" gorm:"not null;index:idx_sales_user_date,priority:1"`
	Date          time.Time           `json:"date" gorm:"not null;index:idx_sales_user_date,priority:2"`
	Type          string              `json:"type" gorm:"type:varchar(20);not null"`
	CustomerName  string              `json:"customer_name" gorm:"type:varchar(100)"`
	ShopName      string              `json:"shop_name" gorm:"type:varchar(200)"`
	ShopAddress   string              `json:"shop_address" gorm:"type:text"`
	ContactNumber string              `json:"contact_number" gorm:"type:varchar(20)"`
	ProductID     *uint               `json:"product_id"`
	Quantity      *float64            `json:"quantity"`
	UnitPrice     decimal.NullDecimal `json:"unit_price" gorm:"type:decimal(12,2)"`
	Total         decimal.Decimal     `json:"total" gorm:"type:decimal(12,2);not null"`
	PaymentMethod string              `json:"payment_method" gorm:"type:varchar(50)"`
	Notes         string              `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time           `json:"created_at"`

	Product *Product `json:"product" gorm:"foreignKey:ProductID"`
}

type Expense struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"-" gorm:"not null;index:idx_expenses_user_date,priority:1"`
	Date          time.Time       `json:"date" gorm:"not null;index:idx_expenses_user_date,priority:2"`
	Category      string          `json:"category" gorm:"type:varchar(100);not null"`
	Description   string          `json:"description" gorm:"type:text"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Vendor        string          `json:"vendor" gorm:"type:varchar(200)"`
	PaymentMethod string          `json:"payment_method" gorm:"type:varchar(50)"`
	CreatedAt     time.Time       `json:"created_at"`
}
