package main

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-payment-processor/config"
	"go-payment-processor/http"
	"go-payment-processor/settlement"
	"os"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, cfg.LogLevel)

	settlementService := settlement.NewService(cfg.Tax, cfg.HomeCurrency, level.Debug(log.With(logger, "component", "processor")))
	settlementService = settlement.NewLoggingService(level.Info(log.With(logger, "component", "settlement")), settlementService)
	settlementService = settlement.NewInstrumentingService(prometheus.DefaultRegisterer, settlementService)

	mux := nhttp.NewServeMux()
	mux.Handle("/api/", http.NewServer(settlementService, log.With(logger, "component", "http")))
	mux.Handle("/metrics", promhttp.Handler())

	level.Info(logger).Log("msg", "listening", "addr", cfg.ListenAddr, "tax", cfg.Tax, "home_currency", cfg.HomeCurrency)
	if err := nhttp.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
