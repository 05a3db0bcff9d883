package service

import (
	"context"
	"testing"

	"github.com/JhonatanMorais-py/meupdv/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	products := newStubProductRepo()
	for _, qty := range []int{3, 50, 7} {
		require.NoError(t, products.Create(context.Background(), &model.Product{
			Name:     "p",
			Category: "Outros",
			Quantity: qty,
		}))
	}
	sales := &stubSaleRepo{totalToday: decimal.NewFromFloat(1234.56)}

	svc := NewDashboardService(products, sales, 10)
	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "R$ 1.234,56", resp.SalesToday)
	assert.Equal(t, int64(3), resp.TotalProducts)
	assert.Equal(t, int64(2), resp.LowStock, "quantities 3 and 7 fall below the threshold of 10")
}

func TestDashboardSummaryEmptyStore(t *testing.T) {
	svc := NewDashboardService(newStubProductRepo(), &stubSaleRepo{}, 10)

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "R$ 0,00", resp.SalesToday)
	assert.Equal(t, int64(0), resp.TotalProducts)
	assert.Equal(t, int64(0), resp.LowStock)
}
