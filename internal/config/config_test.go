package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.MinIO.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("AWS_ENDPOINT", "minio.local:9000")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.MinIO.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "movies",
		Password: "secret",
		DBName:   "catalog",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5433 user=movies password=secret dbname=catalog sslmode=disable TimeZone=UTC connect_timeout=10", d.DSN())

	d.URL = "postgres://movies:secret@db:5433/catalog"
	assert.Equal(t, d.URL, d.DSN())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "3001"},
			Database: DatabaseConfig{Host: "localhost", QueryTimeout: time.Second},
			Auth:     AuthConfig{BcryptCost: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "SERVER_PORT"},
		{name: "missing host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: "DB_HOST"},
		{name: "url replaces host", mutate: func(c *Config) {
			c.Database.Host = ""
			c.Database.URL = "postgres://localhost/movies"
		}},
		{name: "zero timeout", mutate: func(c *Config) { c.Database.QueryTimeout = 0 }, wantErr: "DB_QUERY_TIMEOUT"},
		{name: "cost too low", mutate: func(c *Config) { c.Auth.BcryptCost = 1 }, wantErr: "AUTH_BCRYPT_COST"},
		{name: "cost too high", mutate: func(c *Config) { c.Auth.BcryptCost = 40 }, wantErr: "AUTH_BCRYPT_COST"},
		{name: "minio without keys", mutate: func(c *Config) { c.MinIO.Endpoint = "minio:9000" }, wantErr: "MinIO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
