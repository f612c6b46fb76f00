package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type ApprovalServiceConfig struct {
	App      App
	HTTP     HTTP
	DB       DB
	Store    Store
	Logger   Logger
	Services Services
	Tally    Tally
	Relay    Relay
	Telegram Telegram
	Discord  Discord
}

func LoadApprovalServiceConfig() (ApprovalServiceConfig, error) {
	var config ApprovalServiceConfig

	if err := env.Parse(&config); err != nil {
		return ApprovalServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.validate(); err != nil {
		return ApprovalServiceConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c ApprovalServiceConfig) validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("DB_URL is required for store driver %q", c.Store.Driver)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.Tally.FallbackAdminCount < 1 {
		return fmt.Errorf("TALLY_FALLBACK_ADMIN_COUNT must be positive, got %d", c.Tally.FallbackAdminCount)
	}
	if c.Tally.MaxWriteRetries < 1 {
		return fmt.Errorf("TALLY_MAX_WRITE_RETRIES must be positive, got %d", c.Tally.MaxWriteRetries)
	}

	return nil
}
