package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
	"DB_DRIVER", "DB_DSN", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_ENCRYPT", "DB_TRUST_SERVER_CERTIFICATE", "DB_SLOW_QUERY_THRESHOLD",
}

// clearEnv blanks every key for the duration of the test; viper treats empty
// values as unset.
func clearEnv(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadEnv(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		clearEnv(t)

		env, err := LoadEnv(missingFile(t))
		require.NoError(t, err)

		assert.Equal(t, "development", env.AppEnv)
		assert.Equal(t, "info", env.LogLevel)
		assert.Equal(t, "console", env.LogFormat)
		assert.Equal(t, DriverSQLServer, env.DBDriver)
		assert.Equal(t, "localhost", env.DBHost)
		assert.Equal(t, "ContosoPizza", env.DBName)
		assert.True(t, env.DBEncrypt)
		assert.False(t, env.DBTrustServerCertificate)
		assert.Equal(t, 200*time.Millisecond, env.DBSlowQueryThreshold)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "3307")
		t.Setenv("DB_ENCRYPT", "false")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_SLOW_QUERY_THRESHOLD", "1s")

		env, err := LoadEnv(missingFile(t))
		require.NoError(t, err)

		assert.Equal(t, DriverMySQL, env.DBDriver)
		assert.Equal(t, "db.internal", env.DBHost)
		assert.Equal(t, "3307", env.DBPort)
		assert.False(t, env.DBEncrypt)
		assert.Equal(t, "debug", env.LogLevel)
		assert.Equal(t, time.Second, env.DBSlowQueryThreshold)
	})

	t.Run("rejects negative slow query threshold", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_SLOW_QUERY_THRESHOLD", "-1s")

		_, err := LoadEnv(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DBSlowQueryThreshold")
	})

	t.Run("reads dotenv file", func(t *testing.T) {
		clearEnv(t)
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("DB_DRIVER=sqlite\nDB_NAME=pizza.db\n"), 0o600))
		// godotenv never overrides variables that already exist, even blank ones.
		require.NoError(t, os.Unsetenv("DB_DRIVER"))
		require.NoError(t, os.Unsetenv("DB_NAME"))
		t.Cleanup(func() {
			os.Unsetenv("DB_DRIVER")
			os.Unsetenv("DB_NAME")
		})

		env, err := LoadEnv(file)
		require.NoError(t, err)

		assert.Equal(t, DriverSQLite, env.DBDriver)
		assert.Equal(t, "pizza.db", env.DBName)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "oracle")

		_, err := LoadEnv(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DBDriver")
	})

	t.Run("rejects non numeric port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_PORT", "sql")

		_, err := LoadEnv(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DBPort")
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := LoadEnv(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat")
	})
}
