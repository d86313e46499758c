package config_test

import (
	"casino/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testPublicKey = "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----"

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/casino")
	t.Setenv("JWT_PUBLIC_KEY", testPublicKey)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.HTTP.Port)
	require.Equal(t, ":5000", cfg.Addr())
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, config.DefaultAllowedOrigins, cfg.CORS.AllowedOrigins)
	require.Equal(t, uint(500), cfg.Users.ListLimit)
	require.Equal(t, 5, cfg.Referral.MaxTreeDepth)
	require.Equal(t, []int64{1000, 500, 300, 200, 100}, cfg.MLM.LevelRates)
	require.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
}

func TestLoad_MongoURIFallback(t *testing.T) {
	t.Setenv("MONGO_URI", "postgres://u:p@db:5432/casino")
	t.Setenv("JWT_PUBLIC_KEY", testPublicKey)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "postgres://u:p@db:5432/casino", cfg.Database.URI)
}

func TestLoad_MissingDatabaseURI(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_PUBLIC_KEY", testPublicKey)

	_, err := config.Load("")
	require.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	// the file is applied to the process environment; register the keys so
	// they are restored after the test
	for _, key := range []string{"DATABASE_URI", "JWT_PUBLIC_KEY", "PORT", "CORS_ALLOWED_ORIGINS", "MLM_LEVEL_RATES"} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URI=postgres://u:p@localhost/casino\n" +
		"JWT_PUBLIC_KEY=pub\n" +
		"PORT=8081\n" +
		"CORS_ALLOWED_ORIGINS=https://a.example,https://b.example\n" +
		"MLM_LEVEL_RATES=700,300\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.HTTP.Port)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, []int64{700, 300}, cfg.MLM.LevelRates)
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/casino")
	t.Setenv("JWT_PUBLIC_KEY", testPublicKey)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Empty(t, cfg.HTTP.TrustedProxies)

	t.Setenv("HTTP_TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1")
	cfg, err = config.Load("")
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.HTTP.TrustedProxies)

	t.Setenv("HTTP_TRUSTED_PROXIES", "proxy.internal")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestLoad_InvalidRates(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/casino")
	t.Setenv("JWT_PUBLIC_KEY", testPublicKey)
	t.Setenv("MLM_LEVEL_RATES", "20000")

	_, err := config.Load("")
	require.Error(t, err)
}
