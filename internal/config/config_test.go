package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "NODE_ENV", "PORT", "JWT_SECRET", "JWT_EXPIRATION",
		"DB_HOST", "DB_NAME", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, time.Hour, cfg.TokenExpiration())
	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
	assert.True(t, cfg.JWT.SecretFallback)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.SecretFallback)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"4000\"\ndatabase:\n  dbname: fromyaml\n"), 0o600))
	t.Setenv("DB_NAME", "fromenv")

	cfg, err := load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "fromenv", cfg.Database.DBName)
}

func TestProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := load("", t.TempDir())
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "prod-secret")
	cfg, err := load("", t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.JWT.SecretFallback)
}

func TestNodeEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "Test")

	cfg, err := load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, EnvTest, cfg.Env)
}

func TestDotenvFileForEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "staging")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"), []byte("LIBRARY_TEST_DOTENV_ONLY=1\nJWT_EXPIRATION=30m\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LIBRARY_TEST_DOTENV_ONLY")
		os.Unsetenv("JWT_EXPIRATION")
	})

	// godotenv does not override variables that already exist, even empty ones.
	os.Unsetenv("JWT_EXPIRATION")

	cfg, err := load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "1", os.Getenv("LIBRARY_TEST_DOTENV_ONLY"))
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiration())
}

func TestInvalidExpiration(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRATION", "soon")

	_, err := load("", t.TempDir())
	assert.Error(t, err)
}
