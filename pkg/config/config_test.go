package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME", "")

	cfg, err := Load("farm-crm")
	require.NoError(t, err)

	assert.Equal(t, "farm-crm", cfg.ServiceName)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/crm.db")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load("farm-crm")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/crm.db", cfg.DB.SQLitePath)
	assert.Equal(t, 2, cfg.JWT.ExpirationHours)
	assert.Equal(t, logger.Silent, cfg.DB.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "empty signing key", env: map[string]string{"DB_DRIVER": "postgres", "JWT_SIGNING_KEY": ""}},
		{name: "zero expiry", env: map[string]string{"DB_DRIVER": "postgres", "JWT_EXPIRATION_HOURS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("farm-crm")
			assert.Error(t, err)
		})
	}
}

func TestGetDSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "crm", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=crm sslmode=disable", c.GetDSN())
}
