package service

import (
	"context"

	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/repository"
)

// SupplierService exposes the ordered lookup list the product form renders.
type SupplierService interface {
	List(ctx context.Context) ([]dto.SupplierResponse, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, len(suppliers))
	for i, sup := range suppliers {
		resp[i] = dto.SupplierResponse{ID: sup.ID, Name: sup.Name}
	}
	return resp, nil
}
