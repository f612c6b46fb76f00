package configs

import "time"

type Services struct {
	AdminDirectoryURL     string        `env:"ADMIN_DIRECTORY_URL"`
	NotifierURL           string        `env:"NOTIFIER_URL,notEmpty"`
	StudentInitializerURL string        `env:"STUDENT_INITIALIZER_URL,notEmpty"`
	OutboundTimeout       time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"15s"`
}
