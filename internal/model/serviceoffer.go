package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ServiceOffer is an engineering service from the "engineer" collection.
// Services carry no stock — booking one never decrements anything.
type ServiceOffer struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description"`
}

func (s *ServiceOffer) Key() int64      { return s.ID }
func (s *ServiceOffer) SetKey(id int64) { s.ID = id }

func (s *ServiceOffer) Clone() *ServiceOffer {
	cp := *s
	return &cp
}

func (s *ServiceOffer) ApplyField(field, raw string) error {
	switch field {
	case "name":
		s.Name = raw
	case "rate":
		s.Rate = coerceDecimal(raw)
	case "description":
		s.Description = raw
	default:
		return fmt.Errorf("service: %q: %w", field, ErrUnknownField)
	}
	return nil
}

func (s *ServiceOffer) Label() string { return s.Name }
