package model

import (
	"time"

	"gorm.io/gorm"
)

// Inventory is the stock of one product in one warehouse. There is at most one
// row per (user, warehouse, product).
type Inventory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"not null;uniqueIndex:idx_inventory_slot,priority:1"`
	WarehouseID uint      `json:"warehouse_id" gorm:"not null;uniqueIndex:idx_inventory_slot,priority:2"`
	ProductID   uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_inventory_slot,priority:3"`
	Quantity    float64   `json:"quantity" gorm:"not null"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`

	Product     *Product `json:"-" gorm:"foreignKey:ProductID"`
	ProductName string   `json:"product_name" gorm:"-"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// AfterFind fills ProductName when the product was preloaded.
func (i *Inventory) AfterFind(tx *gorm.DB) error {
	if i.Product != nil {
		i.ProductName = i.Product.Name
	}
	return nil
}
