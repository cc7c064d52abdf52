package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "ub-jewellers")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StoreFirestore, cfg.StoreDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, IncomeOrderChronological, cfg.IncomeStatsOrder)
	assert.Equal(t, 6, cfg.SalesSeriesSlots)
	assert.Equal(t, 6, cfg.TopCategoryLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadMongoWithoutFirebase(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("INCOME_STATS_ORDER", "legacy")
	t.Setenv("SALES_SERIES_SLOTS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, IncomeOrderLegacy, cfg.IncomeStatsOrder)
	assert.Equal(t, 5, cfg.SalesSeriesSlots)
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := Config{
		StoreDriver:      StoreMongo,
		MongoURI:         "mongodb://db:27017",
		PaymentProvider:  PaymentStripe,
		IncomeStatsOrder: IncomeOrderChronological,
		SalesSeriesSlots: 6,
		ReportTimezone:   "UTC",
	}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"unknown store":    func(c *Config) { c.StoreDriver = "postgres" },
		"firestore no id":  func(c *Config) { c.StoreDriver = StoreFirestore },
		"unknown payment":  func(c *Config) { c.PaymentProvider = "paypal" },
		"unknown ordering": func(c *Config) { c.IncomeStatsOrder = "random" },
		"too many slots":   func(c *Config) { c.SalesSeriesSlots = 13 },
		"bad timezone":     func(c *Config) { c.ReportTimezone = "Mars/Olympus" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
