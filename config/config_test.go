package config

import (
	"errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-payment-processor/domain"
	"go-payment-processor/processor"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("TAX_RATE", "")
	t.Setenv("HOME_CURRENCY", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.True(t, decimal.RequireFromString("0.15").Equal(cfg.Tax))
	assert.Equal(t, domain.Code("CZK"), cfg.HomeCurrency)
	assert.NotNil(t, cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("TAX_RATE", "0.21")
	t.Setenv("HOME_CURRENCY", " eur ")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.True(t, decimal.RequireFromString("0.21").Equal(cfg.Tax))
	assert.Equal(t, domain.Code("EUR"), cfg.HomeCurrency)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TAX_RATE", "abc")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TAX_RATE", "1")
	_, err = Load()
	assert.True(t, errors.Is(err, processor.ErrInvalidTax))

	t.Setenv("TAX_RATE", "")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)
}
