package hifz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hafiz/internal/storage"
)

func pageNumbers(records []PageRecord) []int {
	pages := make([]int, 0, len(records))
	for _, r := range records {
		pages = append(pages, r.PageNumber)
	}
	return pages
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func seedPages(store *Store, records ...PageRecord) {
	for _, r := range records {
		store.pages[r.PageNumber] = r
	}
}

func TestStore_PagesForRevision(t *testing.T) {
	store, clock := newTestStore(t, storage.NewMemoryStorage())
	now := clock.Now()
	seedPages(store,
		PageRecord{PageNumber: 1, Status: StatusMemorized, NextRevisionDue: timePtr(now)},
		PageRecord{PageNumber: 2, Status: StatusStrong, NextRevisionDue: timePtr(now.Add(-time.Second))},
		PageRecord{PageNumber: 3, Status: StatusWeak, NextRevisionDue: timePtr(now.Add(time.Second))},
		PageRecord{PageNumber: 4, Status: StatusWeak},
		PageRecord{PageNumber: 5, Status: StatusNone},
		PageRecord{PageNumber: 6, Status: StatusMemorized, NextRevisionDue: timePtr(now.AddDate(0, 0, -3))},
	)

	assert.Equal(t, []int{4, 6, 2, 1}, pageNumbers(store.PagesForRevision()))
	assert.Equal(t, []int{6, 2}, pageNumbers(store.OverduePages()))
}

func TestStore_DueAndOverdueBoundary(t *testing.T) {
	tests := []struct {
		name        string
		due         time.Duration
		wantDue     bool
		wantOverdue bool
	}{
		{name: "due exactly now", due: 0, wantDue: true, wantOverdue: false},
		{name: "one second in the past", due: -time.Second, wantDue: true, wantOverdue: true},
		{name: "one second in the future", due: time.Second, wantDue: false, wantOverdue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, clock := newTestStore(t, storage.NewMemoryStorage())
			seedPages(store, PageRecord{PageNumber: 77, Status: StatusMemorized, NextRevisionDue: timePtr(clock.Now().Add(tt.due))})

			assert.Equal(t, tt.wantDue, len(store.PagesForRevision()) == 1)
			assert.Equal(t, tt.wantOverdue, len(store.OverduePages()) == 1)
		})
	}
}

func TestStore_RevisionList(t *testing.T) {
	store, clock := newTestStore(t, storage.NewMemoryStorage())
	now := clock.Now()
	seedPages(store,
		PageRecord{PageNumber: 40, Status: StatusWeak, NextRevisionDue: timePtr(now.AddDate(0, 0, 5))},
		PageRecord{PageNumber: 9, Status: StatusWeak, NextRevisionDue: timePtr(now.AddDate(0, 0, -1))},
		PageRecord{PageNumber: 12, Status: StatusStrong, NextRevisionDue: timePtr(now.AddDate(0, 0, -2))},
		PageRecord{PageNumber: 2, Status: StatusNone},
	)

	tests := []struct {
		mode FilterMode
		want []int
	}{
		{mode: FilterDue, want: []int{12, 9}},
		{mode: FilterWeak, want: []int{9, 40}},
		{mode: FilterAll, want: []int{9, 12, 40}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := store.RevisionList(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pageNumbers(got))
		})
	}

	_, err := store.RevisionList(FilterMode("recent"))
	assert.Error(t, err)
}

func TestParseFilterMode(t *testing.T) {
	got, err := ParseFilterMode("weak")
	require.NoError(t, err)
	assert.Equal(t, FilterWeak, got)

	_, err = ParseFilterMode("")
	assert.Error(t, err)
}
