package domain

import (
	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
)

// loggingCurrency decorates a Currency with a trace of every rate lookup
type loggingCurrency struct {
	next   Currency
	logger log.Logger
}

// NewLoggingCurrency returns a Currency that logs each exchange rate lookup
func NewLoggingCurrency(logger log.Logger, c Currency) Currency {
	return &loggingCurrency{
		next:   c,
		logger: logger,
	}
}

func (c *loggingCurrency) Code() Code { return c.next.Code() }

func (c *loggingCurrency) ExchangeRate() decimal.Decimal {
	c.logger.Log("msg", "fetching current exchange rate", "currency", c.next.Code())
	rate := c.next.ExchangeRate()
	c.logger.Log("msg", "exchange rate", "currency", c.next.Code(), "rate", rate)
	return rate
}

func (c *loggingCurrency) currency() {}
