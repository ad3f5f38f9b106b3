// Package payment builds the simulated payment instructions attached to an
// order. Three rails exist: a USSD mobile-money dial string, a bank checkout
// redirect, and static cash-on-delivery instructions. None of them report
// completion back — the order and stock mutation are already committed by
// the time the customer sees the instruction.
package payment

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/config"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
)

// Rail identifies one simulated payment method.
type Rail string

const (
	RailMobileMoney    Rail = "mobile_money"
	RailBankTransfer   Rail = "bank_transfer"
	RailCashOnDelivery Rail = "cash_on_delivery"
)

// ErrUnknownRail is returned for payment methods this gateway does not offer.
var ErrUnknownRail = errors.New("unknown payment rail")

// Instruction is what the customer is shown after checkout. Exactly one of
// URI / RedirectURL is set for the dial and redirect rails; Message is
// always set.
type Instruction struct {
	Rail        Rail   `json:"rail"`
	Reference   string `json:"reference"`
	URI         string `json:"uri,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Message     string `json:"message"`
}

// Gateway holds the merchant-side settings for the simulated rails.
type Gateway struct {
	ussdPrefix   string
	merchantCode string
	bankBaseURL  string
}

func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		ussdPrefix:   cfg.MobileMoneyUSSD,
		merchantCode: cfg.MerchantCode,
		bankBaseURL:  cfg.BankRedirectURL,
	}
}

// Instructions builds the customer-facing instruction for an order.
func (g *Gateway) Instructions(rail Rail, o *model.Order) (*Instruction, error) {
	ref := fmt.Sprintf("MEC-%d", o.ID)
	amount := o.Total.StringFixed(0)

	switch rail {
	case RailMobileMoney:
		// Dial string in the form *150*00*<merchant>*<amount># — the '#'
		// must be percent-encoded inside a tel: URI.
		dial := fmt.Sprintf("%s*%s*%s%s", g.ussdPrefix, g.merchantCode, amount, "%23")
		return &Instruction{
			Rail:      rail,
			Reference: ref,
			URI:       "tel:" + dial,
			Message:   fmt.Sprintf("Dial %s*%s*%s# and quote reference %s.", g.ussdPrefix, g.merchantCode, amount, ref),
		}, nil

	case RailBankTransfer:
		q := url.Values{}
		q.Set("reference", ref)
		q.Set("amount", amount)
		return &Instruction{
			Rail:        rail,
			Reference:   ref,
			RedirectURL: g.bankBaseURL + "?" + q.Encode(),
			Message:     "You will be redirected to your bank to complete the transfer.",
		}, nil

	case RailCashOnDelivery:
		return &Instruction{
			Rail:      rail,
			Reference: ref,
			Message:   fmt.Sprintf("Pay %s in cash on delivery. Keep reference %s for the driver.", amount, ref),
		}, nil
	}
	return nil, fmt.Errorf("%q: %w", rail, ErrUnknownRail)
}
