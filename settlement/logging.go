package settlement

import (
	"context"
	"github.com/go-kit/log"
	"go-payment-processor/processor"
	"time"
)

// loggingService decorates a settlement.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Settle(ctx context.Context, req Request) (receipt processor.Receipt, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "settle",
			"payment_method", req.Method,
			"provider", req.Provider,
			"amount", req.Amount,
			"currency", req.Currency,
			"id", receipt.ID,
			"paid", receipt.Paid,
			"after_tax", receipt.AfterTax,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Settle(ctx, req)
}
