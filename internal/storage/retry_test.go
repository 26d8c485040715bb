package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_storage "github.com/at-ishikawa/hafiz/internal/mocks/storage"
)

func TestRetryStorage_Set(t *testing.T) {
	errWrite := errors.New("write failed")

	tests := []struct {
		name     string
		attempts uint
		setup    func(m *mock_storage.MockStorage)
		wantErr  error
	}{
		{
			name:     "first attempt succeeds",
			attempts: 2,
			setup: func(m *mock_storage.MockStorage) {
				m.EXPECT().Set(gomock.Any(), "hifz_pages", "{}").Return(nil)
			},
		},
		{
			name:     "second attempt succeeds",
			attempts: 2,
			setup: func(m *mock_storage.MockStorage) {
				gomock.InOrder(
					m.EXPECT().Set(gomock.Any(), "hifz_pages", "{}").Return(errWrite),
					m.EXPECT().Set(gomock.Any(), "hifz_pages", "{}").Return(nil),
				)
			},
		},
		{
			name:     "gives up after the configured attempts",
			attempts: 2,
			setup: func(m *mock_storage.MockStorage) {
				m.EXPECT().Set(gomock.Any(), "hifz_pages", "{}").Return(errWrite).Times(2)
			},
			wantErr: errWrite,
		},
		{
			name:     "zero attempts still tries once",
			attempts: 0,
			setup: func(m *mock_storage.MockStorage) {
				m.EXPECT().Set(gomock.Any(), "hifz_pages", "{}").Return(errWrite).Times(1)
			},
			wantErr: errWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			next := mock_storage.NewMockStorage(ctrl)
			tt.setup(next)

			s := NewRetryStorage(next, tt.attempts, 0)
			err := s.Set(context.Background(), "hifz_pages", "{}")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetryStorage_PassesReadsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_storage.NewMockStorage(ctrl)
	next.EXPECT().Get(gomock.Any(), "hifz_logs").Return("", false, errors.New("read failed")).Times(1)
	next.EXPECT().Remove(gomock.Any(), "hifz_pages", "hifz_logs").Return(nil)

	s := NewRetryStorage(next, 3, 0)
	_, _, err := s.Get(context.Background(), "hifz_logs")
	assert.Error(t, err)
	assert.NoError(t, s.Remove(context.Background(), "hifz_pages", "hifz_logs"))
}
