package payment

import (
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/config"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway() *Gateway {
	return NewGateway(&config.Config{
		MobileMoneyUSSD: "*150*00",
		MerchantCode:    "545454",
		BankRedirectURL: "https://pay.example-bank.co.tz/checkout",
	})
}

func testOrder() *model.Order {
	return &model.Order{ID: 42, Total: decimal.NewFromInt(370000)}
}

func TestMobileMoneyInstruction(t *testing.T) {
	ins, err := testGateway().Instructions(RailMobileMoney, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "MEC-42", ins.Reference)
	assert.Equal(t, "tel:*150*00*545454*370000%23", ins.URI)
	assert.Empty(t, ins.RedirectURL)
	assert.Contains(t, ins.Message, "*150*00*545454*370000#")
}

func TestBankTransferInstruction(t *testing.T) {
	ins, err := testGateway().Instructions(RailBankTransfer, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "MEC-42", ins.Reference)
	assert.Contains(t, ins.RedirectURL, "https://pay.example-bank.co.tz/checkout?")
	assert.Contains(t, ins.RedirectURL, "reference=MEC-42")
	assert.Contains(t, ins.RedirectURL, "amount=370000")
	assert.Empty(t, ins.URI)
}

func TestCashOnDeliveryInstruction(t *testing.T) {
	ins, err := testGateway().Instructions(RailCashOnDelivery, testOrder())
	require.NoError(t, err)
	assert.Empty(t, ins.URI)
	assert.Empty(t, ins.RedirectURL)
	assert.Contains(t, ins.Message, "MEC-42")
	assert.Contains(t, ins.Message, "370000")
}

func TestUnknownRail(t *testing.T) {
	_, err := testGateway().Instructions(Rail("crypto"), testOrder())
	assert.ErrorIs(t, err, ErrUnknownRail)
}
