package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RecordFieldsRequest carries raw form fields for a create or update. Values
// arrive as text exactly as the form submitted them; numeric coercion happens
// in the edit buffer, not here.
type RecordFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ListResponse is the common envelope for collection listings.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// PriceCheckResponse is returned by the public price check endpoint.
type PriceCheckResponse struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Available int    `json:"available"`
	Category  string `json:"category"`
}
