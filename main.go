package main

import (
	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
	"go-payment-processor/domain"
	"go-payment-processor/processor"
	"os"
)

func main() {
	w := log.NewSyncWriter(os.Stdout)
	logger := log.NewLogfmtLogger(w)

	payment, err := domain.NewCardPayment("VISA", decimal.RequireFromString("9.5"), domain.NewLoggingCurrency(logger, domain.USD{}))
	if err != nil {
		logger.Log("msg", "creating payment", "err", err)
		os.Exit(1)
	}

	p, err := processor.New(1, payment, processor.WithLogger(logger))
	if err != nil {
		logger.Log("msg", "creating processor", "err", err)
		os.Exit(1)
	}

	paid := p.PaidAmount()
	p.ProcessPayment(paid)
	p.AmountAfterTax(paid)
}
