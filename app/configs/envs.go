package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLServer = "sqlserver"
	DriverMySQL     = "mysql"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

type ENV struct {
	AppEnv    string `validate:"required"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=console json"`

	DBDriver                 string `validate:"oneof=sqlserver mysql postgres sqlite"`
	DBDSN                    string
	DBHost                   string `validate:"required_without=DBDSN"`
	DBPort                   string `validate:"omitempty,numeric"`
	DBUser                   string
	DBPassword               string
	DBName                   string `validate:"required_without=DBDSN"`
	DBEncrypt                bool
	DBTrustServerCertificate bool
	DBSlowQueryThreshold     time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// LoadEnv reads the given dotenv files (default ".env") into the process
// environment and resolves the configuration from it. Missing files are
// ignored.
func LoadEnv(files ...string) (ENV, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ENV{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("DB_DRIVER", DriverSQLServer)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_NAME", "ContosoPizza")
	v.SetDefault("DB_ENCRYPT", true)
	v.SetDefault("DB_TRUST_SERVER_CERTIFICATE", false)
	v.SetDefault("DB_SLOW_QUERY_THRESHOLD", "200ms")

	env := ENV{
		AppEnv:                   v.GetString("APP_ENV"),
		LogLevel:                 v.GetString("LOG_LEVEL"),
		LogFormat:                v.GetString("LOG_FORMAT"),
		DBDriver:                 v.GetString("DB_DRIVER"),
		DBDSN:                    v.GetString("DB_DSN"),
		DBHost:                   v.GetString("DB_HOST"),
		DBPort:                   v.GetString("DB_PORT"),
		DBUser:                   v.GetString("DB_USER"),
		DBPassword:               v.GetString("DB_PASSWORD"),
		DBName:                   v.GetString("DB_NAME"),
		DBEncrypt:                v.GetBool("DB_ENCRYPT"),
		DBTrustServerCertificate: v.GetBool("DB_TRUST_SERVER_CERTIFICATE"),
		DBSlowQueryThreshold:     v.GetDuration("DB_SLOW_QUERY_THRESHOLD"),
	}

	if err := env.Validate(); err != nil {
		return ENV{}, err
	}
	return env, nil
}

func (e ENV) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
