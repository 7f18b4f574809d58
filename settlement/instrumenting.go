package settlement

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"go-payment-processor/processor"
	"time"
)

const (
	namespace = "payments"
	subsystem = "settlement"
)

type instrumentingService struct {
	requestCount   *prometheus.CounterVec   // requests_total{payment_method,outcome}
	requestLatency *prometheus.HistogramVec // request_duration_seconds{payment_method}
	settledAmount  *prometheus.CounterVec   // settled_amount_total{currency}
	next           Service
}

// NewInstrumentingService returns a Service that records Prometheus metrics, registered on reg
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	svc := &instrumentingService{
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Number of settlement requests.",
		}, []string{"payment_method", "outcome"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of settlement requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"payment_method"}),
		settledAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "settled_amount_total",
			Help:      "Sum of post-tax amounts settled, in home currency.",
		}, []string{"currency"}),
		next: s,
	}
	reg.MustRegister(svc.requestCount, svc.requestLatency, svc.settledAmount)
	return svc
}

func (s *instrumentingService) Settle(ctx context.Context, req Request) (receipt processor.Receipt, err error) {
	defer func(begin time.Time) {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		method := string(normalizeMethod(req.Method))
		s.requestCount.WithLabelValues(method, outcome).Inc()
		s.requestLatency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
		if err == nil {
			s.settledAmount.WithLabelValues(string(receipt.HomeCurrency)).Add(receipt.AfterTax.InexactFloat64())
		}
	}(time.Now())
	return s.next.Settle(ctx, req)
}
