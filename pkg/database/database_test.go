package database

import (
	"context"
	"testing"

	"github.com/pratheepg2026-commits/crm-v2/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestOpenInMemoryMigratesModels(t *testing.T) {
	db, err := OpenInMemory(&widget{})
	require.NoError(t, err)

	require.NoError(t, db.Create(&widget{Name: "crate"}).Error)

	var got widget
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "crate", got.Name)
	assert.NoError(t, Ping(context.Background(), db))
}

func TestOpenSQLiteFromConfig(t *testing.T) {
	cfg := &config.DBConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   t.TempDir() + "/crm.db",
		MaxIdleConns: 2,
		MaxOpenConns: 10,
		LogLevel:     logger.Silent,
	}

	db, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, MigrateModels(db, &widget{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestMigrateModelsWithoutDB(t *testing.T) {
	assert.Error(t, MigrateModels(nil, &widget{}))
}
