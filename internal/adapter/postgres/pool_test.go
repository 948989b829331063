package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/verbnet-reader/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:             "postgres://u:p@localhost:5432/verbnet",
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(4), cfg.MaxConns)
	assert.Equal(t, int32(1), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, ApplicationName, cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_KeepsDSNApplicationName(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN: "postgres://u:p@localhost:5432/verbnet?application_name=importer",
	})
	require.NoError(t, err)
	assert.Equal(t, "importer", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := poolConfig(config.DatabaseConfig{DSN: "postgres://%zz"})
	require.Error(t, err)
}
