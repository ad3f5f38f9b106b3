package dto

import "github.com/Jose-11-2001/Mechanic-sub000/internal/payment"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PurchaseRequest struct {
	Category      string `json:"category"       validate:"required,oneof=tyres tubes batteries oil_change engineer cars"`
	ItemID        int64  `json:"item_id"        validate:"required,min=1"`
	Quantity      int    `json:"quantity"       validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=mobile_money bank_transfer cash_on_delivery"`
	CustomerName  string `json:"customer_name"  validate:"required,min=2,max=120"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=7,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseResponse struct {
	Order   OrderResponse        `json:"order"`
	Payment *payment.Instruction `json:"payment"`
}
