package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "TAX_RATE", "INVOICE_PREFIX", "SHOP_TIMEZONE", "NOTICE_TTL", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 0.21, cfg.TaxRate)
	assert.Equal(t, "FAC", cfg.InvoicePrefix)
	assert.Equal(t, "Europe/Madrid", cfg.ShopTimezone)
	assert.Equal(t, 24*time.Hour, cfg.NoticeTTL)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TAX_RATE", "0.1")
	t.Setenv("NOTICE_TTL", "90m")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_MAX_IDLE_CONNS", "many")

	cfg := Load()
	assert.Equal(t, 0.1, cfg.TaxRate)
	assert.Equal(t, 90*time.Minute, cfg.NoticeTTL)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.True(t, cfg.IsProduction())
}
