package catalog

import (
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func michelin() *model.Product {
	return &model.Product{ID: 1, Name: "Michelin 165/70R14", Price: decimal.NewFromInt(185000), Quantity: 50}
}

func TestPurchaseDecrementsAndTotals(t *testing.T) {
	p := michelin()
	total, err := Purchase(p, 2)
	require.NoError(t, err)
	assert.Equal(t, 48, p.Quantity)
	assert.True(t, total.Equal(decimal.NewFromInt(370000)))
}

func TestPurchaseExactRemainingStock(t *testing.T) {
	p := michelin()
	_, err := Purchase(p, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity)
}

func TestPurchaseOverRemainingStock(t *testing.T) {
	p := michelin()
	_, err := Purchase(p, 51)
	require.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 50, p.Quantity)
}

func TestPurchaseAtZeroStockAlwaysFails(t *testing.T) {
	p := michelin()
	p.Quantity = 0
	_, err := Purchase(p, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestPurchaseQuantityBelowOne(t *testing.T) {
	p := michelin()
	for _, qty := range []int{0, -3} {
		_, err := Purchase(p, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Equal(t, 50, p.Quantity)
}
