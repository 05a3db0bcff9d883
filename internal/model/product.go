package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the central inventory entity. Margin is a snapshot taken at save
// time from (CostPrice, SalePrice); it is never recomputed on read.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"not null"`
	Description string
	Category    string  `gorm:"not null"`
	Barcode     *string `gorm:"uniqueIndex"`
	Quantity    int     `gorm:"not null;default:0"`
	MinStock    int     `gorm:"not null;default:0"`
	Location    string
	CostPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SalePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Margin      decimal.Decimal `gorm:"type:decimal(7,2)"`
	SupplierID  *uint           `gorm:"index"`
	ImagePath   string
	CreatedAt   time.Time
	// Active is kept for schema compatibility; no code path flips it.
	Active bool `gorm:"not null;default:true"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
