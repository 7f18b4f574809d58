package http

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"
	"go-payment-processor/domain"
	"go-payment-processor/settlement"
	"io"
	"net/http"
)

// maxBodyBytes limits the size of a settlement request body
const maxBodyBytes = 1 << 20

// Server dependencies for HTTP Server functions
type Server struct {
	Service settlement.Service
	Logger  log.Logger
	router  http.ServeMux
}

func NewServer(s settlement.Service, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Logger:  logger,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/payments", s.settle())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// settle produces HTTP handler for settling payments
func (s *Server) settle() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Method   settlement.Method `json:"method"`
		Provider string            `json:"provider"`
		Amount   decimal.Decimal   `json:"amount"`
		Currency domain.Code       `json:"currency"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		ID       int             `json:"id"`
		Paid     decimal.Decimal `json:"paid"`
		AfterTax decimal.Decimal `json:"afterTax"`
		Currency domain.Code     `json:"currency"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			rw.Header().Set("Allow", http.MethodPost)
			writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		bytes, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}

		receipt, err := s.Service.Settle(r.Context(), settlement.Request{
			Method:   request.Method,
			Provider: request.Provider,
			Amount:   request.Amount,
			Currency: request.Currency,
		})
		if err != nil {
			if reason, ok := badRequest(err); ok {
				writeError(rw, http.StatusBadRequest, reason)
				return
			}
			level.Error(s.Logger).Log("msg", "settlement failed", "err", err)
			writeError(rw, http.StatusInternalServerError, "failed settlement")
			return
		}

		response := response{
			ID:       receipt.ID,
			Paid:     receipt.Paid,
			AfterTax: receipt.AfterTax,
			Currency: receipt.HomeCurrency,
		}

		enc := json.NewEncoder(rw)
		err = enc.Encode(&response)
		if err != nil {
			level.Error(s.Logger).Log("msg", "failed json encoding", "err", err)
		}
	}
}

// badRequest maps client errors to the reason reported back to the client
func badRequest(err error) (string, bool) {
	for _, e := range []error{
		domain.ErrInvalidAmount,
		domain.ErrUnknownCurrency,
		settlement.ErrUnknownMethod,
		settlement.ErrCashCurrency,
	} {
		if errors.Is(err, e) {
			return e.Error(), true
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "request cancelled", true
	}
	return "", false
}

func writeError(rw http.ResponseWriter, status int, reason string) {
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": reason})
}
