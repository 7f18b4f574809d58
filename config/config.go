package config

import (
	"fmt"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"
	"go-payment-processor/domain"
	"go-payment-processor/processor"
	"os"
	"strings"
)

const (
	defaultListenAddr = ":8080"
	defaultLogLevel   = "info"
)

type Config struct {
	ListenAddr   string
	Tax          decimal.Decimal
	HomeCurrency domain.Code
	LogLevel     level.Option
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() (Config, error) {
	tax := processor.DefaultTax
	if raw := getEnv("TAX_RATE", ""); raw != "" {
		t, err := decimal.NewFromString(raw)
		if err != nil {
			return Config{}, fmt.Errorf("TAX_RATE [%v]: %w", raw, err)
		}
		if t.IsNegative() || t.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return Config{}, fmt.Errorf("TAX_RATE [%v]: %w", raw, processor.ErrInvalidTax)
		}
		tax = t
	}

	logLevel, err := parseLevel(getEnv("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return Config{}, err
	}

	return Config{
		ListenAddr:   getEnv("LISTEN_ADDR", defaultListenAddr),
		Tax:          tax,
		HomeCurrency: domain.ParseCode(getEnv("HOME_CURRENCY", string(processor.DefaultHomeCurrency))),
		LogLevel:     logLevel,
	}, nil
}

func parseLevel(s string) (level.Option, error) {
	switch strings.ToLower(s) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("LOG_LEVEL [%v]: unknown level", s)
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
