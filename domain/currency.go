package domain

import (
	"fmt"
	"github.com/shopspring/decimal"
)

// Currency supplies the rate converting an amount in that currency into home currency units.
// The set of implementations is closed: USD and EUR, plus decorators defined in this package.
type Currency interface {
	Code() Code
	ExchangeRate() decimal.Decimal

	currency()
}

const (
	CodeUSD Code = "USD"
	CodeEUR Code = "EUR"
)

// fixture rates, not market data
var (
	usdRate = decimal.New(215, -1)
	eurRate = decimal.New(253, -1)
)

// USD US dollar
type USD struct{}

func (USD) Code() Code                    { return CodeUSD }
func (USD) ExchangeRate() decimal.Decimal { return usdRate }
func (USD) currency()                     {}

// EUR euro
type EUR struct{}

func (EUR) Code() Code                    { return CodeEUR }
func (EUR) ExchangeRate() decimal.Decimal { return eurRate }
func (EUR) currency()                     {}

var currencies = map[Code]Currency{
	CodeUSD: USD{},
	CodeEUR: EUR{},
}

// CurrencyFor looks up a currency by code.
func CurrencyFor(code Code) (Currency, error) {
	c, ok := currencies[ParseCode(string(code))]
	if !ok {
		return nil, fmt.Errorf("currency [%v]: %w", code, ErrUnknownCurrency)
	}
	return c, nil
}

// Currencies returns every known currency, ordered by code.
func Currencies() []Currency {
	return []Currency{EUR{}, USD{}}
}
