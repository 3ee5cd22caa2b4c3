package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillmarket/skillmarket-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SKILLMARKET_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "SkillMarket API", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SKILLMARKET_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("SKILLMARKET_APP_PORT", "9090")
	t.Setenv("SKILLMARKET_APP_ENV", "production")
	t.Setenv("SKILLMARKET_TOKEN_TTL", "1h")
	t.Setenv("SKILLMARKET_BCRYPT_COST", "12")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadRequiresRedisURL(t *testing.T) {
	t.Setenv("SKILLMARKET_REDIS_URL", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestHTTPAddress(t *testing.T) {
	require.Equal(t, ":8080", config.Config{AppPort: "8080"}.HTTPAddress())
	require.Equal(t, ":9090", config.Config{AppPort: ":9090"}.HTTPAddress())
}

func TestLoadInvalidTokenTTL(t *testing.T) {
	t.Setenv("SKILLMARKET_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SKILLMARKET_TOKEN_TTL", "not-a-duration")

	_, err := config.Load()
	require.Error(t, err)
}
