package configs

type Tally struct {
	FallbackAdminCount int  `env:"TALLY_FALLBACK_ADMIN_COUNT" envDefault:"3"`
	VerdictOnce        bool `env:"TALLY_VERDICT_ONCE" envDefault:"false"`
	MaxWriteRetries    int  `env:"TALLY_MAX_WRITE_RETRIES" envDefault:"3"`
}
