// Package database provides database connection management.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // Registers the pgx driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Registers the sqlite driver

	"github.com/at-ishikawa/hafiz/internal/config"
)

// Open opens a connection for the SQL driver selected in cfg.
// Connections are lazy, so a bad address only surfaces on first use.
func Open(cfg config.StorageConfig) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.DriverMySQL:
		return OpenMySQL(cfg.MySQL)
	case config.DriverPostgres:
		return OpenPostgres(cfg.Postgres.DSN)
	}
	return nil, fmt.Errorf("driver %q is not a SQL driver", cfg.Driver)
}

// OpenSQLite opens the SQLite file at path, creating its directory.
func OpenSQLite(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)
	return db, nil
}

// OpenMySQL opens a MySQL connection using the provided config.
func OpenMySQL(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}

	db, err := sqlx.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// OpenPostgres opens a PostgreSQL connection through the pgx stdlib driver.
func OpenPostgres(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	return db, nil
}
