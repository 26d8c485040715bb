package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/hafiz/internal/config"
	"github.com/at-ishikawa/hafiz/internal/database"
)

// Open builds the Storage selected by cfg, with writes retried
// cfg.WriteAttempts times. The returned close function releases any database
// connection.
func Open(ctx context.Context, cfg config.StorageConfig) (Storage, func() error, error) {
	noop := func() error { return nil }

	var base Storage
	closeFn := noop
	switch cfg.Driver {
	case config.DriverMemory:
		base = NewMemoryStorage()
	case config.DriverFile, "":
		base = NewFileStorage(cfg.FilePath)
	case config.DriverSQLite, config.DriverMySQL, config.DriverPostgres:
		db, err := database.Open(cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("database.Open() > %w", err)
		}
		sqlStorage, err := NewSQLStorage(db, cfg.Table)
		if err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("NewSQLStorage() > %w", err)
		}
		if err := sqlStorage.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("EnsureSchema() > %w", err)
		}
		base = sqlStorage
		closeFn = db.Close
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	slog.Debug("storage opened", slog.String("driver", cfg.Driver))
	return NewRetryStorage(base, cfg.WriteAttempts, cfg.RetryDelay()), closeFn, nil
}
