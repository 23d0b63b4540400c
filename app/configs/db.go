package configs

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/Rakhulsr/contoso-pizza/app/db/session"
	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

var defaultPorts = map[string]string{
	DriverSQLServer: "1433",
	DriverMySQL:     "3306",
	DriverPostgres:  "5432",
}

// DSN returns DB_DSN when set, otherwise builds a connection string for the
// configured driver.
func (e ENV) DSN() (string, error) {
	if e.DBDSN != "" {
		return e.DBDSN, nil
	}

	port := e.DBPort
	if port == "" {
		port = defaultPorts[e.DBDriver]
	}

	switch e.DBDriver {
	case DriverSQLServer:
		query := url.Values{}
		query.Set("database", e.DBName)
		if e.DBEncrypt {
			query.Set("encrypt", "true")
		} else {
			query.Set("encrypt", "disable")
		}
		if e.DBTrustServerCertificate {
			query.Set("TrustServerCertificate", "true")
		}
		u := url.URL{
			Scheme:   "sqlserver",
			Host:     net.JoinHostPort(e.DBHost, port),
			RawQuery: query.Encode(),
		}
		if e.DBUser != "" {
			u.User = url.UserPassword(e.DBUser, e.DBPassword)
		}
		return u.String(), nil

	case DriverMySQL:
		cfg := mysqldriver.NewConfig()
		cfg.User = e.DBUser
		cfg.Passwd = e.DBPassword
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(e.DBHost, port)
		cfg.DBName = e.DBName
		cfg.ParseTime = true
		cfg.Loc = time.Local
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		if e.DBEncrypt {
			cfg.TLSConfig = "true"
			if e.DBTrustServerCertificate {
				cfg.TLSConfig = "skip-verify"
			}
		}
		return cfg.FormatDSN(), nil

	case DriverPostgres:
		sslMode := "disable"
		if e.DBEncrypt {
			sslMode = "verify-full"
			if e.DBTrustServerCertificate {
				sslMode = "require"
			}
		}
		u := url.URL{
			Scheme:   "postgres",
			Host:     net.JoinHostPort(e.DBHost, port),
			Path:     "/" + e.DBName,
			RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
		}
		if e.DBUser != "" {
			u.User = url.UserPassword(e.DBUser, e.DBPassword)
		}
		return u.String(), nil

	case DriverSQLite:
		return e.DBName + "?_foreign_keys=on", nil

	default:
		return "", fmt.Errorf("unsupported database driver %q", e.DBDriver)
	}
}

func (e ENV) Dialector() (gorm.Dialector, error) {
	dsn, err := e.DSN()
	if err != nil {
		return nil, err
	}

	switch e.DBDriver {
	case DriverSQLServer:
		return sqlserver.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", e.DBDriver)
	}
}

// OpenConnection opens a session against the configured store.
func OpenConnection(ctx context.Context, env ENV, log *zap.Logger) (*session.Session, error) {
	dialector, err := env.Dialector()
	if err != nil {
		return nil, &session.ConnectionError{Driver: env.DBDriver, Err: err}
	}

	log.Info("connecting to database",
		zap.String("driver", env.DBDriver),
		zap.String("host", env.DBHost),
		zap.String("database", env.DBName),
	)

	return session.Open(ctx, dialector,
		session.WithLogger(log),
		session.WithSQLLogLevel(env.LogLevel),
		session.WithSlowThreshold(env.DBSlowQueryThreshold),
	)
}
