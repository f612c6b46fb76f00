package configs

import "time"

type Relay struct {
	Interval    time.Duration `env:"RELAY_INTERVAL" envDefault:"30s"`
	BatchSize   int           `env:"RELAY_BATCH_SIZE" envDefault:"50"`
	MaxAttempts int           `env:"RELAY_MAX_ATTEMPTS" envDefault:"5"`
}
