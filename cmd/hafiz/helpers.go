package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/at-ishikawa/hafiz/internal/config"
	"github.com/at-ishikawa/hafiz/internal/hifz"
	"github.com/at-ishikawa/hafiz/internal/storage"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// app is the state shared by commands that work on the hifz store
type app struct {
	cfg     *config.Config
	store   *hifz.Store
	closeFn func() error
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Clock.Location()
	if err != nil {
		return nil, fmt.Errorf("cfg.Clock.Location() > %w", err)
	}

	kv, closeFn, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return &app{
		cfg:     cfg,
		store:   hifz.Load(ctx, kv, hifz.WithLocation(loc)),
		closeFn: closeFn,
	}, nil
}

func (a *app) Close() {
	if err := a.closeFn(); err != nil {
		slog.Warn("failed to close storage", slog.Any("error", err))
	}
}

func parsePage(arg string) (int, error) {
	page, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", hifz.ErrInvalidPage, arg)
	}
	return page, nil
}
