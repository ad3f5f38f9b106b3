package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Car is a rental fleet record. Quantity is the number of identical units
// available; DailyRate is the price per unit per day.
type Car struct {
	ID          int64           `json:"id"`
	Model       string          `json:"model"`
	Year        string          `json:"year"`
	Seats       int             `json:"seats"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
}

func (c *Car) Key() int64                 { return c.ID }
func (c *Car) SetKey(id int64)            { c.ID = id }
func (c *Car) StockQuantity() int         { return c.Quantity }
func (c *Car) SetStockQuantity(q int)     { c.Quantity = q }
func (c *Car) UnitPrice() decimal.Decimal { return c.DailyRate }

func (c *Car) Clone() *Car {
	cp := *c
	return &cp
}

func (c *Car) ApplyField(field, raw string) error {
	switch field {
	case "model":
		c.Model = raw
	case "year":
		c.Year = raw
	case "seats":
		c.Seats = coerceInt(raw)
	case "daily_rate":
		c.DailyRate = coerceDecimal(raw)
	case "quantity":
		c.Quantity = coerceInt(raw)
	case "description":
		c.Description = raw
	default:
		return fmt.Errorf("car: %q: %w", field, ErrUnknownField)
	}
	return nil
}

func (c *Car) Label() string { return c.Model }
