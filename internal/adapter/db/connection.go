package db

import (
	"fmt"
	"net/url"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tonandton/report-tracking/internal/config"
)

// ConnectDB opens the configured database. Postgres goes through the pgx stdlib driver.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	driverName, dsn, err := buildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if driverName == config.DriverSQLite {
		// SQLite allows a single writer; serialize through one connection.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

func buildDSN(conf *config.Config) (string, string, error) {
	switch conf.DbDriver {
	case config.DriverMySQL:
		params := conf.DbParams
		if params == "" {
			params = "parseTime=true&multiStatements=true"
		}
		return "mysql", fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	case config.DriverPostgres:
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(conf.DbUser, conf.DbPassword),
			Host:     conf.DbHost + ":" + conf.DbPort,
			Path:     "/" + conf.DbName,
			RawQuery: conf.DbParams,
		}
		return "pgx", dsn.String(), nil
	case config.DriverSQLite:
		dsn := conf.SqlitePath
		if conf.DbParams != "" {
			dsn += "?" + conf.DbParams
		}
		return config.DriverSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}
