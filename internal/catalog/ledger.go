package catalog

import (
	"errors"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrOutOfStock is returned when the item cannot cover the requested
	// quantity. An item at exactly 0 rejects every further purchase.
	ErrOutOfStock = errors.New("out of stock")

	// ErrInvalidQuantity is returned for requests below one unit.
	ErrInvalidQuantity = errors.New("requested quantity must be at least 1")
)

// Purchase decrements the item's stock and returns the line total.
// The decrement happens in place — callers pass a clone and persist it in
// the same Mutate call so the decrement is never computed and then lost.
// Stock may land on exactly 0; it never goes negative.
func Purchase(item model.Stocked, qty int) (decimal.Decimal, error) {
	if qty < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	if item.StockQuantity() < 1 || qty > item.StockQuantity() {
		return decimal.Zero, ErrOutOfStock
	}
	item.SetStockQuantity(item.StockQuantity() - qty)
	return item.UnitPrice().Mul(decimal.NewFromInt(int64(qty))), nil
}
