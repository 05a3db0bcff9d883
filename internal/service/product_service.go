package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/JhonatanMorais-py/meupdv/internal/barcode"
	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/model"
	"github.com/JhonatanMorais-py/meupdv/internal/money"
	"github.com/JhonatanMorais-py/meupdv/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// categories is the fixed set offered by the product form combobox.
var categories = []string{
	"Alimentação",
	"Bebidas",
	"Limpeza",
	"Higiene",
	"Eletrônicos",
	"Roupas",
	"Calçados",
	"Casa e Jardim",
	"Esportes",
	"Livros",
	"Brinquedos",
	"Outros",
}

// ErrBarcodeExists signals a unique-constraint hit on the barcode column.
var ErrBarcodeExists = errors.New("código de barras já existe no sistema")

// ValidationError aggregates every failed form rule. All rules are evaluated;
// an empty list never reaches the caller (the save proceeds instead).
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Errors, "; ") }

// ProductService defines the business logic contract for the product form.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context) (*dto.ProductListResponse, error)
	PreviewMargin(req dto.MarginPreviewRequest) dto.MarginPreviewResponse
	ValidateBarcode(code string) dto.BarcodeValidationResponse
	Categories() []string
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// Create validates the submitted form state and persists a single product row.
// The margin stored is a snapshot computed from the validated prices; callers
// get back display-formatted values ready to render.
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if errs := validateForm(req); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	// Both parse cleanly here — validation already accepted them.
	cost, _ := money.ParseAmount(req.CostPrice)
	sale, _ := money.ParseAmount(req.SalePrice)

	var code *string
	if c := strings.TrimSpace(req.Barcode); c != "" {
		code = &c
	}

	p := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Barcode:     code,
		Quantity:    coerceInt(req.Quantity),
		MinStock:    coerceInt(req.MinStock),
		Location:    strings.TrimSpace(req.Location),
		CostPrice:   cost,
		SalePrice:   sale,
		Margin:      money.Margin(cost, sale).Round(2),
		SupplierID:  req.SupplierID,
		ImagePath:   req.ImagePath,
		Active:      true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBarcodeExists
		}
		return nil, fmt.Errorf("erro ao salvar produto: %w", err)
	}

	resp := toProductResponse(p)
	return &resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, total, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, len(products))
	for i := range products {
		data[i] = toProductResponse(&products[i])
	}
	return &dto.ProductListResponse{Data: data, Total: total}, nil
}

// PreviewMargin reproduces the live recompute the form runs on every price
// keystroke: both fields go through the money mask, then the margin is derived.
// Unparseable input collapses to zero for display purposes only.
func (s *productService) PreviewMargin(req dto.MarginPreviewRequest) dto.MarginPreviewResponse {
	costText := money.MaskMoney(req.CostPrice)
	saleText := money.MaskMoney(req.SalePrice)

	cost, err := money.ParseAmount(costText)
	if err != nil {
		cost = decimal.Zero
	}
	sale, err := money.ParseAmount(saleText)
	if err != nil {
		sale = decimal.Zero
	}

	return dto.MarginPreviewResponse{
		CostPrice: costText,
		SalePrice: saleText,
		Margin:    money.FormatMargin(money.Margin(cost, sale).Round(2)),
	}
}

func (s *productService) ValidateBarcode(code string) dto.BarcodeValidationResponse {
	format, err := barcode.Validate(strings.TrimSpace(code))
	if err != nil {
		return dto.BarcodeValidationResponse{Valid: false, Detail: err.Error()}
	}
	return dto.BarcodeValidationResponse{
		Valid:  true,
		Format: string(format),
		Detail: fmt.Sprintf("código %s válido", format),
	}
}

func (s *productService) Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// validateForm checks every rule independently and returns the aggregated
// messages. No cross-field rule exists: a negative margin is legitimate.
func validateForm(req dto.CreateProductRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "nome do produto é obrigatório")
	}

	if req.Category == "" {
		errs = append(errs, "categoria é obrigatória")
	} else if !validCategory(req.Category) {
		errs = append(errs, "categoria inválida")
	}

	if cost, err := money.ParseAmount(req.CostPrice); err != nil {
		errs = append(errs, "preço de custo inválido")
	} else if cost.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "preço de custo deve ser maior que zero")
	}

	if sale, err := money.ParseAmount(req.SalePrice); err != nil {
		errs = append(errs, "preço de venda inválido")
	} else if sale.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "preço de venda deve ser maior que zero")
	}

	if code := strings.TrimSpace(req.Barcode); code != "" {
		if _, err := barcode.Validate(code); err != nil {
			errs = append(errs, "código de barras deve ter 8 ou 13 dígitos")
		}
	}

	return errs
}

func validCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// coerceInt turns quantity-like field text into an int: the digits mask drops
// everything else and an empty result defaults to 0.
func coerceInt(s string) int {
	digits := money.MaskDigits(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	created := ""
	if !p.CreatedAt.IsZero() {
		created = p.CreatedAt.Format("2006-01-02 15:04:05")
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Barcode:     p.Barcode,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Location:    p.Location,
		CostPrice:   money.Format(p.CostPrice),
		SalePrice:   money.Format(p.SalePrice),
		Margin:      money.FormatMargin(p.Margin),
		SupplierID:  p.SupplierID,
		ImagePath:   p.ImagePath,
		CreatedAt:   created,
		Active:      p.Active,
	}
}
