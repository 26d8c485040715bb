package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, found, err := s.Get(ctx, "hifz_pages")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "hifz_pages", `{"1":{}}`))
	require.NoError(t, s.Set(ctx, "hifz_logs", `[]`))

	got, found, err := s.Get(ctx, "hifz_pages")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"1":{}}`, got)

	require.NoError(t, s.Remove(ctx, "hifz_pages", "missing"))
	_, found, err = s.Get(ctx, "hifz_pages")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.Get(ctx, "hifz_logs")
	require.NoError(t, err)
	assert.True(t, found)
}
