package settlement

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
	"go-payment-processor/domain"
	"go-payment-processor/processor"
	"strings"
	"sync/atomic"
)

// Method how a payment is made
type Method string

const (
	MethodCard Method = "card"
	MethodCash Method = "cash"

	// MethodUnknown stands for any method that is not supported
	MethodUnknown Method = "unknown"
)

var (
	ErrUnknownMethod = errors.New("unknown payment method")
	ErrCashCurrency  = errors.New("cash payments are made in home currency only")
)

// normalizeMethod returns the canonical form of m, or MethodUnknown
func normalizeMethod(m Method) Method {
	switch n := Method(strings.ToLower(strings.TrimSpace(string(m)))); n {
	case MethodCard, MethodCash:
		return n
	default:
		return MethodUnknown
	}
}

// Request a payment to settle
type Request struct {
	Method   Method
	Provider string
	Amount   decimal.Decimal

	// Currency of a card payment. Empty means home currency.
	Currency domain.Code
}

// Service settles payments into receipts
type Service interface {
	Settle(ctx context.Context, req Request) (processor.Receipt, error)
}

// service builds a processor per request
type service struct {
	// tax applied by every processor
	tax decimal.Decimal

	// homeCurrency of every processor
	homeCurrency domain.Code

	// lastID the most recently assigned processor id
	lastID int64

	logger log.Logger
}

// NewService constructs a valid Service
func NewService(tax decimal.Decimal, homeCurrency domain.Code, logger log.Logger) Service {
	return &service{
		tax:          tax,
		homeCurrency: domain.ParseCode(string(homeCurrency)),
		logger:       logger,
	}
}

// Settle converts, processes and taxes a payment.
// Each call is handled by a new processor with the next id.
func (s *service) Settle(ctx context.Context, req Request) (processor.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return processor.Receipt{}, err
	}

	payment, err := s.payment(req)
	if err != nil {
		return processor.Receipt{}, fmt.Errorf("settle [%v]: %w", req.Method, err)
	}

	id := int(atomic.AddInt64(&s.lastID, 1))
	p, err := processor.New(id, payment,
		processor.WithTax(s.tax),
		processor.WithHomeCurrency(s.homeCurrency),
		processor.WithLogger(s.logger),
	)
	if err != nil {
		return processor.Receipt{}, fmt.Errorf("settle [%v]: %w", req.Method, err)
	}

	return p.Process(), nil
}

// payment builds the domain payment for a request
func (s *service) payment(req Request) (domain.Payment, error) {
	switch normalizeMethod(req.Method) {
	case MethodCard:
		var currency domain.Currency
		if req.Currency != "" && domain.ParseCode(string(req.Currency)) != s.homeCurrency {
			c, err := domain.CurrencyFor(req.Currency)
			if err != nil {
				return nil, err
			}
			currency = domain.NewLoggingCurrency(s.logger, c)
		}
		return domain.NewCardPayment(req.Provider, req.Amount, currency)
	case MethodCash:
		if req.Currency != "" && domain.ParseCode(string(req.Currency)) != s.homeCurrency {
			return nil, fmt.Errorf("currency [%v]: %w", req.Currency, ErrCashCurrency)
		}
		return domain.NewCashPayment(req.Amount)
	default:
		return nil, ErrUnknownMethod
	}
}
