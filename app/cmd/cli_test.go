package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rakhulsr/contoso-pizza/app/configs"
	"github.com/Rakhulsr/contoso-pizza/app/db/session"
	"github.com/Rakhulsr/contoso-pizza/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func sqliteEnv(path string) configs.ENV {
	return configs.ENV{
		AppEnv:    "test",
		LogLevel:  "error",
		LogFormat: "console",
		DBDriver:  configs.DriverSQLite,
		DBName:    path,
	}
}

func countProducts(t *testing.T, path string) int64 {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	return count
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("migrates then seeds three products", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pizza.db")
		env := sqliteEnv(path)

		require.NoError(t, Migrate(ctx, env, zap.NewNop()))
		require.NoError(t, Seed(ctx, env, zap.NewNop()))

		assert.Equal(t, int64(3), countProducts(t, path))
	})

	t.Run("missing schema is a persistence error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pizza.db")

		err := Seed(ctx, sqliteEnv(path), zap.NewNop())

		var persistErr *session.PersistenceError
		require.ErrorAs(t, err, &persistErr)
		assert.Equal(t, 3, persistErr.Pending)
	})

	t.Run("unreachable store fails before any row exists", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "missing", "pizza.db")

		err := Seed(ctx, sqliteEnv(path), zap.NewNop())

		var connErr *session.ConnectionError
		require.ErrorAs(t, err, &connErr)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestRunCli(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pizza.db")
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", path)

	ctx := context.Background()
	require.NoError(t, RunCli(ctx, []string{"contoso-pizza", "migrate"}))
	require.NoError(t, RunCli(ctx, []string{"contoso-pizza"}))

	assert.Equal(t, int64(3), countProducts(t, path))
}

func TestRunCli_InvalidConfiguration(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	err := RunCli(context.Background(), []string{"contoso-pizza"})
	assert.Error(t, err)
}
