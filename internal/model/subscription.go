package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const StatusActive = "Active"

// DayList is an ordered list of supply-day labels stored as one comma-joined column.
type DayList []string

func (d DayList) Value() (driver.Value, error) {
	return strings.Join(d, ","), nil
}

func (d *DayList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan DayList: unsupported type %T", value)
	}

	*d = DayList{}
	if raw == "" {
		return nil
	}
	for _, day := range strings.Split(raw, ",") {
		*d = append(*d, day)
	}
	return nil
}

// MarshalJSON renders an unset list as [] rather than null.
func (d DayList) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(d))
}

type Subscription struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"-" gorm:"not null;index"`
	CustomerName string     `json:"customer_name" gorm:"type:varchar(100);not null"`
	Phone        string     `json:"phone" gorm:"type:varchar(20)"`
	Email        string     `json:"email" gorm:"type:varchar(120)"`
	Address      string     `json:"address" gorm:"type:text"`
	ProductID    uint       `json:"product_id" gorm:"not null"`
	Quantity     *float64   `json:"quantity"`
	Frequency    string     `json:"frequency" gorm:"type:varchar(50)"`
	SupplyDays   DayList    `json:"supply_days" gorm:"type:varchar(100)"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:Active"`
	CreatedAt    time.Time  `json:"created_at"`

	Product     *Product `json:"-" gorm:"foreignKey:ProductID"`
	ProductName string   `json:"product_name" gorm:"-"`
}

// AfterFind fills ProductName when the product was preloaded.
func (s *Subscription) AfterFind(tx *gorm.DB) error {
	if s.Product != nil {
		s.ProductName = s.Product.Name
	}
	return nil
}

type WholesaleCustomer struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	UserID             uint            `json:"-" gorm:"not null;index"`
	Name               string          `json:"name" gorm:"type:varchar(200);not null"`
	ContactPerson      string          `json:"contact_person" gorm:"type:varchar(100)"`
	Phone              string          `json:"phone" gorm:"type:varchar(20);not null"`
	Email              string          `json:"email" gorm:"type:varchar(120)"`
	Address            string          `json:"address" gorm:"type:text"`
	CreditLimit        decimal.Decimal `json:"credit_limit" gorm:"type:decimal(12,2);not null;default:0"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance" gorm:"type:decimal(12,2);not null;default:0"`
	Status             string          `json:"status" gorm:"type:varchar(20);default:Active"`
	CreatedAt          time.Time       `json:"created_at"`
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Product{},
		&Warehouse{},
		&Inventory{},
		&Sale{},
		&Expense{},
		&Subscription{},
		&WholesaleCustomer{},
	}
}
