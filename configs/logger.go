package configs

type Logger struct {
	URL     string `env:"LOKI_URL"`
	AppName string `env:"LOG_APP_NAME" envDefault:"applicant-review-service"`
	File    string `env:"LOG_FILE"`
}
