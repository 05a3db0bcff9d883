package repository

import (
	"context"

	"github.com/JhonatanMorais-py/meupdv/internal/model"

	"gorm.io/gorm"
)

// SupplierRepository is read-only from the inventory subsystem's point of
// view: suppliers are seeded at startup and only looked up here.
type SupplierRepository interface {
	List(ctx context.Context) ([]model.Supplier, error)
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}
