package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is the shared record shape behind the tyres, tubes, batteries and
// oil_change collections. Fields that do not apply to a category are simply
// left empty (a tube has no battery type, an oil product has no size).
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Size        string          `json:"size"`
	Brand       string          `json:"brand"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
}

func (p *Product) Key() int64       { return p.ID }
func (p *Product) SetKey(id int64)  { p.ID = id }
func (p *Product) StockQuantity() int {
	return p.Quantity
}
func (p *Product) SetStockQuantity(q int)     { p.Quantity = q }
func (p *Product) UnitPrice() decimal.Decimal { return p.Price }

// Clone returns a shallow copy for edit buffers.
func (p *Product) Clone() *Product {
	cp := *p
	return &cp
}

// ApplyField sets one field from its raw form value.
// Numeric fields coerce, defaulting to 0 on non-numeric input.
func (p *Product) ApplyField(field, raw string) error {
	switch field {
	case "name":
		p.Name = raw
	case "size":
		p.Size = raw
	case "brand":
		p.Brand = raw
	case "type":
		p.Type = raw
	case "price":
		p.Price = coerceDecimal(raw)
	case "quantity":
		p.Quantity = coerceInt(raw)
	case "description":
		p.Description = raw
	default:
		return fmt.Errorf("product: %q: %w", field, ErrUnknownField)
	}
	return nil
}

// Label is the display name used on orders and receipts.
func (p *Product) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Brand + " " + p.Size
}
