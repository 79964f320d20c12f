package lookup

import (
	"os"
	"strconv"
	"time"
)

// Config is the configuration for the status proxy application.
type Config struct {
	HTTPAddr string
	// PayoutURL and PayinURL are the vendor lookup endpoints, one per
	// transaction type.
	PayoutURL string
	PayinURL  string
	// UpstreamTimeout bounds every single outbound vendor call.
	UpstreamTimeout time.Duration
	// MaxBulkIDs caps how many ids one bulk request may carry.
	MaxBulkIDs int
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:        "localhost:5000",
		PayoutURL:       "https://server.sahulatpay.com/disbursement/tele",
		PayinURL:        "https://server.sahulatpay.com/transactions/tele",
		UpstreamTimeout: 15 * time.Second,
		MaxBulkIDs:      5000,
	}
}

// ConfigFromEnv returns the default configuration with environment
// overrides applied.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.PayoutURL = getenv("PAYOUT_URL", cfg.PayoutURL)
	cfg.PayinURL = getenv("PAYIN_URL", cfg.PayinURL)

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.UpstreamTimeout = d
		}
	}
	if v := os.Getenv("MAX_BULK_IDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxBulkIDs = n
		}
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
