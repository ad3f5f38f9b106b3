package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is one of the four lifecycle states. Transitions are enforced
// by the order package; the persisted value is never anything else.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the defined statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order is a record in the "orders" collection. The stock decrement and the
// order append are committed together before any payment confirmation would
// exist — the rails are fire-and-forget.
type Order struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Category      Category        `json:"category"`
	ItemID        int64           `json:"item_id"`
	ItemName      string          `json:"item_name"`
	Quantity      int             `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (o *Order) Key() int64      { return o.ID }
func (o *Order) SetKey(id int64) { o.ID = id }

func (o *Order) Clone() *Order {
	cp := *o
	return &cp
}

func (o *Order) ApplyField(field, raw string) error {
	switch field {
	case "customer_name":
		o.CustomerName = raw
	case "customer_email":
		o.CustomerEmail = raw
	case "customer_phone":
		o.CustomerPhone = raw
	case "item_name":
		o.ItemName = raw
	case "quantity":
		o.Quantity = coerceInt(raw)
	case "total":
		o.Total = coerceDecimal(raw)
	case "payment_method":
		o.PaymentMethod = raw
	default:
		return fmt.Errorf("order: %q: %w", field, ErrUnknownField)
	}
	return nil
}
