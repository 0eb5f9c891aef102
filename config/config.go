package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
)

const (
	defaultServerAddress = ":8080"
	defaultDatabaseDSN   = ""
	defaultLogLevel      = "debug"
	defaultDeliveryFee   = 2.99
	defaultTaxRate       = 0.08
)

type Config struct {
	ServerAddr   string
	DatabaseDSN  string
	LogLevel     string
	AuthTokenKey string
	DeliveryFee  float64
	TaxRate      float64
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{
			DeliveryFee: defaultDeliveryFee,
			TaxRate:     defaultTaxRate,
		}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "order service server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "order service database DSN")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if tokenKeyEnv := os.Getenv("AUTH_TOKEN_KEY"); tokenKeyEnv != "" {
			cfg.AuthTokenKey = tokenKeyEnv
		}
		if feeEnv := os.Getenv("DELIVERY_FEE"); feeEnv != "" {
			if fee, err := strconv.ParseFloat(feeEnv, 64); err == nil {
				cfg.DeliveryFee = fee
			}
		}
		if taxEnv := os.Getenv("TAX_RATE"); taxEnv != "" {
			if rate, err := strconv.ParseFloat(taxEnv, 64); err == nil {
				cfg.TaxRate = rate
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
