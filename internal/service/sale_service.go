package service

import (
	"context"
	"errors"
	"time"

	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/model"
	"github.com/JhonatanMorais-py/meupdv/internal/money"
	"github.com/JhonatanMorais-py/meupdv/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrEmptySale rejects finalizing a cart with nothing in it.
var ErrEmptySale = errors.New("nenhum produto adicionado")

// ErrInvalidTotal rejects totals that are not valid money text.
var ErrInvalidTotal = errors.New("total da venda inválido")

const saleDateLayout = "2006-01-02 15:04:05"

type SaleService interface {
	Finalize(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
}

type saleService struct {
	repo repository.SaleRepository
	now  func() time.Time
}

func NewSaleService(repo repository.SaleRepository) SaleService {
	return &saleService{repo: repo, now: time.Now}
}

// Finalize records the cart total with the sale timestamp. The cart itself
// lives in the sales screen; this subsystem only persists the (date, total)
// pair the screen hands over.
func (s *saleService) Finalize(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	total, err := money.ParseAmount(req.Total)
	if err != nil {
		return nil, ErrInvalidTotal
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, ErrEmptySale
	}

	sale := &model.Sale{
		Date:  s.now().Format(saleDateLayout),
		Total: total.Round(2),
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:    sale.ID,
		Date:  sale.Date,
		Total: money.Format(sale.Total),
	}, nil
}
