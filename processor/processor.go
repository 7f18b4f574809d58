package processor

import (
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
	"go-payment-processor/domain"
)

const DefaultHomeCurrency domain.Code = "CZK"

// DefaultTax 15%
var DefaultTax = decimal.New(15, -2)

var (
	ErrNoPayment  = errors.New("processor requires a payment")
	ErrInvalidTax = errors.New("tax must be in [0, 1)")
)

// Processor handles a single payment and reports amounts in its home currency.
type Processor struct {
	// id caller assigned identifier
	id int

	// payment owned by this processor
	payment domain.Payment

	// tax rate subtracted from paid amounts
	tax decimal.Decimal

	// homeCurrency the currency amounts are reported and taxed in
	homeCurrency domain.Code

	logger log.Logger
}

// Option configures a Processor
type Option func(*Processor)

// WithTax overrides DefaultTax
func WithTax(tax decimal.Decimal) Option {
	return func(p *Processor) { p.tax = tax }
}

// WithHomeCurrency overrides DefaultHomeCurrency
func WithHomeCurrency(code domain.Code) Option {
	return func(p *Processor) { p.homeCurrency = code }
}

// WithLogger sets the logger that payment reports are written to
func WithLogger(logger log.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// New constructs a valid Processor.
func New(id int, payment domain.Payment, opts ...Option) (*Processor, error) {
	if payment == nil {
		return nil, fmt.Errorf("processor [%v]: %w", id, ErrNoPayment)
	}

	p := &Processor{
		id:           id,
		payment:      payment,
		tax:          DefaultTax,
		homeCurrency: DefaultHomeCurrency,
		logger:       log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.tax.IsNegative() || p.tax.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("processor [%v] tax %v: %w", id, p.tax, ErrInvalidTax)
	}
	p.logger = log.With(p.logger, "processor", id)

	return p, nil
}

func (p *Processor) ID() int                   { return p.id }
func (p *Processor) Tax() decimal.Decimal      { return p.tax }
func (p *Processor) HomeCurrency() domain.Code { return p.homeCurrency }
func (p *Processor) Payment() domain.Payment   { return p.payment }

// PaidAmount is the payment converted into home currency.
func (p *Processor) PaidAmount() decimal.Decimal {
	return p.payment.ConvertPayment()
}

// ProcessPayment reports that amount is being processed. It stands in for settlement and changes nothing.
func (p *Processor) ProcessPayment(amount decimal.Decimal) {
	p.logger.Log("msg", "payment is being processed", "amount", amount, "currency", p.homeCurrency)
}

// AmountAfterTax returns amount less tax. No rounding is applied.
func (p *Processor) AmountAfterTax(amount decimal.Decimal) decimal.Decimal {
	afterTax := amount.Sub(amount.Mul(p.tax))
	p.logger.Log("msg", "amount after tax", "amount", afterTax, "currency", p.homeCurrency)
	return afterTax
}

// Receipt the outcome of processing a payment
type Receipt struct {
	ID           int
	Paid         decimal.Decimal
	AfterTax     decimal.Decimal
	HomeCurrency domain.Code
}

// Process converts, processes and taxes the payment in one go.
func (p *Processor) Process() Receipt {
	paid := p.PaidAmount()
	p.ProcessPayment(paid)
	return Receipt{
		ID:           p.id,
		Paid:         paid,
		AfterTax:     p.AmountAfterTax(paid),
		HomeCurrency: p.homeCurrency,
	}
}
