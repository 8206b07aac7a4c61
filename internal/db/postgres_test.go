package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmad/library-backend/internal/config"
)

func TestNewPoolConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "library"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "library"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxOpenConns = 20
	cfg.Database.MaxIdleConns = 4
	cfg.Database.ConnMaxLifetime = "30m"

	poolConfig, err := NewPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.Equal(t, uint16(5433), poolConfig.ConnConfig.Port)
	assert.Equal(t, "library", poolConfig.ConnConfig.Database)
	assert.Equal(t, int32(20), poolConfig.MaxConns)
	assert.Equal(t, int32(4), poolConfig.MinConns)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnLifetime)
}

func TestNewPoolConfigLifetimeFallback(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.DBName = "library"
	cfg.Database.SSLMode = "disable"
	cfg.Database.ConnMaxLifetime = "forever"

	poolConfig, err := NewPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, poolConfig.MaxConnLifetime)
}
