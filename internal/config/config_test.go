package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "0 0 0 1 * *", cfg.Scheduler.BillingCronExpression)
	assert.Equal(t, int64(1000), cfg.Defaults.WiFiMonthlyCharge)
	assert.Equal(t, int64(2000), cfg.Defaults.SecurityDepositDefault)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DEFAULT_WIFI_MONTHLY_CHARGE", "1200")
	t.Setenv("BILLING_CRON_EXPRESSION", "0 30 2 1 * *")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, int64(1200), cfg.Defaults.WiFiMonthlyCharge)
	assert.Equal(t, "0 30 2 1 * *", cfg.Scheduler.BillingCronExpression)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("DEFAULT_SECURITY_DEPOSIT", "2k")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int64(2000), cfg.Defaults.SecurityDepositDefault)
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "admin",
		Password: "secret",
		DBName:   "hostel",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=admin password=secret dbname=hostel sslmode=require",
		db.GetDSN(),
	)
}
