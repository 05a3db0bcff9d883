package model

// Supplier is referenced, never mutated, by the product form. Rows come from
// the startup seed; all contact fields are optional.
type Supplier struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"not null"`
	Contact string
	Phone   string
	Email   string
	Address string
	Notes   string

	Products []Product `gorm:"foreignKey:SupplierID"`
}
