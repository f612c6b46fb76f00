package configs

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Store struct {
	Driver string `env:"STORE_DRIVER" envDefault:"postgres"`
}
