package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
)

// Dialect selects the SQL flavour used for schema and upserts.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
)

// DefaultTable is the table name used when none is configured.
const DefaultTable = "kv_store"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DialectOf maps a database/sql driver name to its Dialect.
func DialectOf(driverName string) (Dialect, error) {
	switch driverName {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "mysql":
		return DialectMySQL, nil
	case "pgx", "postgres":
		return DialectPostgres, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driverName)
}

// SQLStorage stores each key as a row of a single two-column table.
type SQLStorage struct {
	db      *sqlx.DB
	table   string
	dialect Dialect
}

// NewSQLStorage creates a SQLStorage on db. The dialect is derived from the driver name.
func NewSQLStorage(db *sqlx.DB, table string) (*SQLStorage, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	dialect, err := DialectOf(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &SQLStorage{db: db, table: table, dialect: dialect}, nil
}

// EnsureSchema creates the table if it does not exist.
func (s *SQLStorage) EnsureSchema(ctx context.Context) error {
	var ddl string
	switch s.dialect {
	case DialectMySQL:
		ddl = `CREATE TABLE IF NOT EXISTS %s (
	item_key VARCHAR(191) NOT NULL PRIMARY KEY,
	item_value LONGTEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`
	case DialectPostgres:
		ddl = `CREATE TABLE IF NOT EXISTS %s (
	item_key TEXT PRIMARY KEY,
	item_value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	default:
		ddl = `CREATE TABLE IF NOT EXISTS %s (
	item_key TEXT PRIMARY KEY,
	item_value TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	}
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(ddl, s.table)); err != nil {
		return fmt.Errorf("db.ExecContext(create %s) > %w", s.table, err)
	}
	return nil
}

func (s *SQLStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := s.db.Rebind(fmt.Sprintf("SELECT item_value FROM %s WHERE item_key = ?", s.table))
	err := s.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.GetContext(%s) > %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStorage) Set(ctx context.Context, key, value string) error {
	var query string
	switch s.dialect {
	case DialectMySQL:
		query = fmt.Sprintf(
			"INSERT INTO %s (item_key, item_value) VALUES (?, ?) ON DUPLICATE KEY UPDATE item_value = VALUES(item_value)",
			s.table)
	default:
		query = fmt.Sprintf(
			"INSERT INTO %s (item_key, item_value) VALUES (?, ?) ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = CURRENT_TIMESTAMP",
			s.table)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), key, value); err != nil {
		return fmt.Errorf("db.ExecContext(upsert %s) > %w", key, err)
	}
	return nil
}

func (s *SQLStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In(fmt.Sprintf("DELETE FROM %s WHERE item_key IN (?)", s.table), keys)
	if err != nil {
		return fmt.Errorf("sqlx.In() > %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.ExecContext(delete) > %w", err)
	}
	return nil
}
