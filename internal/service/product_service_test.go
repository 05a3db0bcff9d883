package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products  map[uint]*model.Product
	nextID    uint
	createErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	if p.Barcode != nil {
		for _, existing := range r.products {
			if existing.Barcode != nil && *existing.Barcode == *p.Barcode {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, int64, error) {
	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) CountBelowStock(_ context.Context, threshold int) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.Quantity < threshold {
			n++
		}
	}
	return n, nil
}

func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:      "Café",
		Category:  "Bebidas",
		Barcode:   "1234567890123",
		Quantity:  "10",
		MinStock:  "2",
		CostPrice: "5,00",
		SalePrice: "8,00",
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Café", resp.Name)
	assert.Equal(t, "5,00", resp.CostPrice)
	assert.Equal(t, "8,00", resp.SalePrice)
	assert.Equal(t, "60,00%", resp.Margin)
	assert.Equal(t, 10, resp.Quantity)
	assert.True(t, resp.Active)

	require.Len(t, repo.products, 1)
	saved := repo.products[resp.ID]
	require.NotNil(t, saved.Barcode)
	assert.Equal(t, "1234567890123", *saved.Barcode)
	assert.True(t, saved.Margin.Equal(decimal.NewFromInt(60)))
	assert.Nil(t, saved.SupplierID)
}

func TestCreateProductMissingName(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	req := validRequest()
	req.Name = "   "
	req.Barcode = ""

	_, err := svc.Create(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "nome do produto é obrigatório", ve.Errors[0])
	assert.Empty(t, repo.products, "no store write on validation failure")
}

func TestCreateProductAggregatesAllErrors(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Barcode: "123",
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{
		"nome do produto é obrigatório",
		"categoria é obrigatória",
		"preço de custo inválido",
		"preço de venda inválido",
		"código de barras deve ter 8 ou 13 dígitos",
	}, ve.Errors)
	assert.Empty(t, repo.products)
}

func TestCreateProductRejectsNonPositivePrices(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	req := validRequest()
	req.CostPrice = "0,00"
	req.SalePrice = "-1,00"

	_, err := svc.Create(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{
		"preço de custo deve ser maior que zero",
		"preço de venda deve ser maior que zero",
	}, ve.Errors)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	req := validRequest()
	req.Category = "Foguetes"

	_, err := svc.Create(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "categoria inválida", ve.Errors[0])
}

func TestCreateProductNegativeMarginAllowed(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	req := validRequest()
	req.CostPrice = "10,00"
	req.SalePrice = "8,00"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "-20,00%", resp.Margin)
}

func TestCreateProductDuplicateBarcode(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Name = "Café Premium"
	_, err = svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrBarcodeExists)
	assert.Len(t, repo.products, 1, "the duplicate insert must not create a row")
}

func TestCreateProductWithoutBarcode(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	req := validRequest()
	req.Barcode = "  "

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, repo.products[resp.ID].Barcode, "empty barcode stores NULL")
}

func TestCreateProductCoercesQuantities(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	req := validRequest()
	req.Barcode = ""
	req.Quantity = "1a2b"
	req.MinStock = ""

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Quantity)
	assert.Equal(t, 0, resp.MinStock)
}

func TestCreateProductSupplierReference(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	supplierID := uint(2)
	req := validRequest()
	req.SupplierID = &supplierID

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, repo.products[resp.ID].SupplierID)
	assert.Equal(t, uint(2), *repo.products[resp.ID].SupplierID)
}

func TestCreateProductStoreFailure(t *testing.T) {
	repo := newStubProductRepo()
	repo.createErr = errors.New("disk I/O error")
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBarcodeExists)
	assert.Contains(t, err.Error(), "disk I/O error", "underlying cause is surfaced")
}

// ── Preview / barcode check ──────────────────────────────────────────────────

func TestPreviewMargin(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	resp := svc.PreviewMargin(dto.MarginPreviewRequest{CostPrice: "500", SalePrice: "800"})
	assert.Equal(t, "5,00", resp.CostPrice)
	assert.Equal(t, "8,00", resp.SalePrice)
	assert.Equal(t, "60,00%", resp.Margin)
}

func TestPreviewMarginEmptyInput(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	resp := svc.PreviewMargin(dto.MarginPreviewRequest{})
	assert.Equal(t, "0,00", resp.CostPrice)
	assert.Equal(t, "0,00", resp.SalePrice)
	assert.Equal(t, "0,00%", resp.Margin)
}

func TestValidateBarcodeEndpointLogic(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	resp := svc.ValidateBarcode("12345678")
	assert.True(t, resp.Valid)
	assert.Equal(t, "EAN-8", resp.Format)

	resp = svc.ValidateBarcode(" 1234567890123 ")
	assert.True(t, resp.Valid)
	assert.Equal(t, "EAN-13", resp.Format)

	resp = svc.ValidateBarcode("123")
	assert.False(t, resp.Valid)
	assert.Empty(t, resp.Format)
	assert.NotEmpty(t, resp.Detail)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	cats := svc.Categories()
	require.NotEmpty(t, cats)
	assert.Contains(t, cats, "Bebidas")

	cats[0] = "mutated"
	assert.NotContains(t, svc.Categories(), "mutated")
}
