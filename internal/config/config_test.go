package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "storefront-admin", cfg.Auth.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 3, cfg.Order.MaxRetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.Order.CheckoutTxTimeout)
	assert.False(t, cfg.Order.VerifyCatalogPrice)
	assert.False(t, cfg.Order.StrictTransitions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ORDER_STRICT_TRANSITIONS", "true")
	t.Setenv("AUTH_SESSION_TTL", "1h")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Order.StrictTransitions)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "forever")

	cfg, err := Load(nil)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_FileValuesBelowEnv(t *testing.T) {
	file := map[string]interface{}{
		"server": map[string]interface{}{"port": 7000},
		"order":  map[string]interface{}{"strict_transitions": false, "max_retry_attempts": 5},
	}
	t.Setenv("ORDER_STRICT_TRANSITIONS", "true")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Order.MaxRetryAttempts)
	assert.True(t, cfg.Order.StrictTransitions)
}
