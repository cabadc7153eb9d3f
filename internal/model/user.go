package model

import (
	"time"
)

const DefaultRole = "Owner"

// User is an account: the owner of every other record.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password_hash;type:varchar(255);not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Role      string    `json:"role" gorm:"type:varchar(50);default:Owner"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	FarmName  string    `json:"farm_name" gorm:"type:varchar(200)"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
