package domain

import (
	"fmt"
	"github.com/shopspring/decimal"
)

// Payment computes its value in home currency units.
// Implementations are CardPayment and CashPayment.
type Payment interface {
	ConvertPayment() decimal.Decimal

	payment()
}

// CardPayment a card payment, possibly made in a foreign currency.
type CardPayment struct {
	Provider string
	Amount   decimal.Decimal

	// Currency of Amount. nil means home currency.
	Currency Currency
}

// NewCardPayment constructs a valid CardPayment. currency may be nil.
func NewCardPayment(provider string, amount decimal.Decimal, currency Currency) (CardPayment, error) {
	if !amount.IsPositive() {
		return CardPayment{}, fmt.Errorf("card payment [%v]: %w", amount, ErrInvalidAmount)
	}
	return CardPayment{
		Provider: provider,
		Amount:   amount,
		Currency: currency,
	}, nil
}

// ConvertPayment multiplies the amount by the currency's exchange rate, if there is one.
func (p CardPayment) ConvertPayment() decimal.Decimal {
	if p.Currency == nil {
		return p.Amount
	}
	return p.Amount.Mul(p.Currency.ExchangeRate())
}

func (CardPayment) payment() {}

// CashPayment is always made in home currency.
type CashPayment struct {
	Amount decimal.Decimal
}

// NewCashPayment constructs a valid CashPayment.
func NewCashPayment(amount decimal.Decimal) (CashPayment, error) {
	if !amount.IsPositive() {
		return CashPayment{}, fmt.Errorf("cash payment [%v]: %w", amount, ErrInvalidAmount)
	}
	return CashPayment{Amount: amount}, nil
}

func (p CashPayment) ConvertPayment() decimal.Decimal {
	return p.Amount
}

func (CashPayment) payment() {}
