package domain

import (
	"errors"
	"strings"
)

// Code a currency code
type Code string

// ParseCode normalises a user supplied currency code.
func ParseCode(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

var (
	// ErrInvalidAmount is returned for non-positive payment amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrUnknownCurrency is returned when a code has no known exchange rate.
	ErrUnknownCurrency = errors.New("unknown currency")
)
