package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"

	PaymentStripe   = "stripe"
	PaymentMidtrans = "midtrans"

	IncomeOrderChronological = "chronological"
	IncomeOrderLegacy        = "legacy"
)

type Config struct {
	ServerPort   string        `env:"SERVER_PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"firestore"`

	FirebaseProject            string `env:"FIREBASE_PROJECT_ID"`
	FirebaseServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	FirebaseServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	FirebaseAuthEnabled        bool   `env:"FIREBASE_AUTH_ENABLED" envDefault:"false"`

	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"ubJewellersDB"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"2h"`

	PaymentProvider     string `env:"PAYMENT_PROVIDER" envDefault:"stripe"`
	PaymentCurrency     string `env:"PAYMENT_CURRENCY" envDefault:"usd"`
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	MidtransServerKey   string `env:"MIDTRANS_SERVER_KEY"`
	MidtransEnvironment string `env:"MIDTRANS_ENVIRONMENT" envDefault:"sandbox"`

	StorageBucket string `env:"STORAGE_BUCKET"`

	ReportTimezone   string `env:"REPORT_TIMEZONE" envDefault:"UTC"`
	IncomeStatsOrder string `env:"INCOME_STATS_ORDER" envDefault:"chronological"`
	SalesSeriesSlots int    `env:"SALES_SERIES_SLOTS" envDefault:"6"`
	TopCategoryLimit int    `env:"TOP_CATEGORY_LIMIT" envDefault:"6"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firestore store")
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.PaymentProvider {
	case PaymentStripe, PaymentMidtrans:
	default:
		return fmt.Errorf("unknown PAYMENT_PROVIDER %q", c.PaymentProvider)
	}

	switch c.IncomeStatsOrder {
	case IncomeOrderChronological, IncomeOrderLegacy:
	default:
		return fmt.Errorf("unknown INCOME_STATS_ORDER %q", c.IncomeStatsOrder)
	}

	if c.SalesSeriesSlots < 1 || c.SalesSeriesSlots > 12 {
		return fmt.Errorf("SALES_SERIES_SLOTS must be between 1 and 12, got %d", c.SalesSeriesSlots)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves the timezone month boundaries are computed in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", c.ReportTimezone, err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
