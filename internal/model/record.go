// Package model defines the catalog record types persisted per category.
// Every category (tyres, batteries, users, orders, …) is an independent
// JSON-encoded collection keyed by its Category name.
package model

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// Category names a persisted collection. One key/value entry per category.
type Category string

const (
	CategoryTyres     Category = "tyres"
	CategoryTubes     Category = "tubes"
	CategoryBatteries Category = "batteries"
	CategoryOilChange Category = "oil_change"
	CategoryEngineer  Category = "engineer"
	CategoryCars      Category = "cars"
	CategoryUsers     Category = "users"
	CategoryOrders    Category = "orders"
)

// ProductCategories are the categories whose records share the Product shape.
var ProductCategories = []Category{
	CategoryTyres, CategoryTubes, CategoryBatteries, CategoryOilChange,
}

// Keyed is implemented by every record stored in a collection.
// Ids are unique within one collection and allocated as max(existing)+1.
type Keyed interface {
	Key() int64
	SetKey(int64)
}

// Stocked is implemented by records that carry sellable stock.
// Quantity may reach exactly 0 (out of stock) but never goes negative.
type Stocked interface {
	Keyed
	StockQuantity() int
	SetStockQuantity(int)
	UnitPrice() decimal.Decimal
}

// ErrUnknownField is returned by ApplyField for fields a record does not have.
var ErrUnknownField = errors.New("unknown field")

// coerceInt parses a raw form value into an int, defaulting to 0 on
// non-numeric input. Form screens submit everything as text.
func coerceInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// coerceDecimal parses a raw form value into a decimal, defaulting to 0.
func coerceDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
