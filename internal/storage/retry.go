package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
)

// RetryStorage retries failed writes on the wrapped Storage. Reads are passed through.
type RetryStorage struct {
	next     Storage
	attempts uint
	delay    time.Duration
}

// NewRetryStorage wraps next so that Set and Remove are attempted up to attempts times.
func NewRetryStorage(next Storage, attempts uint, delay time.Duration) *RetryStorage {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryStorage{next: next, attempts: attempts, delay: delay}
}

func (s *RetryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return s.next.Get(ctx, key)
}

func (s *RetryStorage) Set(ctx context.Context, key, value string) error {
	return s.do(ctx, "set", key, func() error {
		return s.next.Set(ctx, key, value)
	})
}

func (s *RetryStorage) Remove(ctx context.Context, keys ...string) error {
	return s.do(ctx, "remove", keys, func() error {
		return s.next.Remove(ctx, keys...)
	})
}

func (s *RetryStorage) do(ctx context.Context, op string, target any, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Warn("storage write attempt failed",
				slog.String("op", op),
				slog.Any("target", target),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
}
