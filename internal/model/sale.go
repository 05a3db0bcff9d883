package model

import "github.com/shopspring/decimal"

// Sale is a finalized cart: the cashier screen computes the total and this
// subsystem records it. Date is stored as "YYYY-MM-DD HH:MM:SS" text.
type Sale struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"`
	Date  string          `gorm:"not null"`
	Total decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
