package dto

import (
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderResponse struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Category      string          `json:"category"`
	ItemID        int64           `json:"item_id"`
	ItemName      string          `json:"item_name"`
	Quantity      int             `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

func NewOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Category:      string(o.Category),
		ItemID:        o.ItemID,
		ItemName:      o.ItemName,
		Quantity:      o.Quantity,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
