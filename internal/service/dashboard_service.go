package service

import (
	"context"

	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/money"
	"github.com/JhonatanMorais-py/meupdv/internal/repository"
)

// DashboardService aggregates the cards shown on the dashboard home screen.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

type dashboardService struct {
	products          repository.ProductRepository
	sales             repository.SaleRepository
	lowStockThreshold int
}

func NewDashboardService(products repository.ProductRepository, sales repository.SaleRepository, lowStockThreshold int) DashboardService {
	return &dashboardService{products: products, sales: sales, lowStockThreshold: lowStockThreshold}
}

func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	salesToday, err := s.sales.TotalToday(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.products.CountBelowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		SalesToday:    money.FormatBRL(salesToday),
		TotalProducts: totalProducts,
		LowStock:      lowStock,
	}, nil
}
