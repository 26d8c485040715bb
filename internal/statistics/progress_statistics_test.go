package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hafiz/internal/hifz"
)

func touched(pages ...int) map[int]hifz.PageRecord {
	records := make(map[int]hifz.PageRecord, len(pages))
	for _, page := range pages {
		records[page] = hifz.PageRecord{PageNumber: page, Status: hifz.StatusMemorized}
	}
	return records
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for page := from; page <= to; page++ {
		pages = append(pages, page)
	}
	return pages
}

func activeDay(date string) hifz.DailyLog {
	return hifz.DailyLog{Date: date, PagesMemorized: []int{1}, PagesRevised: []int{}}
}

func TestCalculate_Counts(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	pages := map[int]hifz.PageRecord{
		1: {PageNumber: 1, Status: hifz.StatusStrong},
		2: {PageNumber: 2, Status: hifz.StatusStrong},
		3: {PageNumber: 3, Status: hifz.StatusWeak},
		4: {PageNumber: 4, Status: hifz.StatusMemorized},
		5: {PageNumber: 5, Status: hifz.StatusNone},
	}
	logs := []hifz.DailyLog{
		{Date: "2025-03-09", PagesMemorized: []int{1, 2}, PagesRevised: []int{}},
		{Date: "2025-03-10", PagesMemorized: []int{4}, PagesRevised: []int{1, 2, 3}},
	}

	got := Calculate(Input{
		Pages:    pages,
		Logs:     logs,
		Settings: hifz.Settings{DailyMemorizeTarget: 2, DailyReviseTarget: 5},
		Now:      now,
		Location: time.UTC,
	})

	assert.Equal(t, 4, got.TotalMemorized)
	assert.Equal(t, 2, got.TotalStrong)
	assert.Equal(t, 1, got.TotalWeak)
	assert.Equal(t, 600, got.Remaining)
	assert.Equal(t, 1, got.PercentComplete)
	assert.Equal(t, 1, got.TodayMemorized)
	assert.Equal(t, 3, got.TodayRevised)
	assert.Equal(t, 2, got.DailyMemorizeTarget)
	assert.Equal(t, 5, got.DailyReviseTarget)
	assert.Equal(t, 2, got.CurrentStreak)
	assert.Equal(t, 2, got.LongestStreak)
	require.NotNil(t, got.EstimatedCompletionDate)
	assert.Equal(t, time.Date(2025, 3, 10+300, 0, 0, 0, 0, time.UTC), *got.EstimatedCompletionDate)
	assert.Empty(t, got.CompletedJuzs)
}

func TestCalculate_PercentComplete(t *testing.T) {
	tests := []struct {
		name      string
		memorized int
		want      int
	}{
		{name: "nothing", memorized: 0, want: 0},
		{name: "151 pages is a quarter", memorized: 151, want: 25},
		{name: "half", memorized: 302, want: 50},
		{name: "all pages", memorized: 604, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(Input{Pages: touched(pageRange(1, tt.memorized)...), Now: time.Now(), Location: time.UTC})
			assert.Equal(t, tt.want, got.PercentComplete)
			assert.Equal(t, tt.memorized, got.TotalMemorized)
		})
	}
}

func TestStreaks(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		logs        []hifz.DailyLog
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "no logs",
			wantCurrent: 0,
			wantLongest: 0,
		},
		{
			name:        "stops at the first gap",
			logs:        []hifz.DailyLog{activeDay("2025-03-10"), activeDay("2025-03-09"), activeDay("2025-03-07")},
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "inactive today breaks the current streak",
			logs:        []hifz.DailyLog{activeDay("2025-03-09"), activeDay("2025-03-08")},
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name: "empty entry counts as a gap",
			logs: []hifz.DailyLog{
				activeDay("2025-03-10"),
				{Date: "2025-03-09", PagesMemorized: []int{}, PagesRevised: []int{}},
				activeDay("2025-03-08"),
			},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name: "longest run earlier in the log",
			logs: []hifz.DailyLog{
				activeDay("2025-02-01"), activeDay("2025-02-02"), activeDay("2025-02-03"), activeDay("2025-02-04"),
				activeDay("2025-03-09"), activeDay("2025-03-10"),
			},
			wantCurrent: 2,
			wantLongest: 4,
		},
		{
			name:        "runs across a month boundary",
			logs:        []hifz.DailyLog{activeDay("2025-02-28"), activeDay("2025-03-01"), activeDay("2025-03-02")},
			wantCurrent: 0,
			wantLongest: 3,
		},
		{
			name:        "unordered log",
			logs:        []hifz.DailyLog{activeDay("2025-03-08"), activeDay("2025-03-10"), activeDay("2025-03-09")},
			wantCurrent: 3,
			wantLongest: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := Streaks(tt.logs, now, time.UTC)
			assert.Equal(t, tt.wantCurrent, current)
			assert.Equal(t, tt.wantLongest, longest)
		})
	}
}

func TestStreaks_UsesLocationForToday(t *testing.T) {
	// 23:30 UTC on the 9th is already the 10th in Tokyo
	now := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)
	logs := []hifz.DailyLog{activeDay("2025-03-10")}

	current, _ := Streaks(logs, now, tokyo)
	assert.Equal(t, 1, current)

	current, _ = Streaks(logs, now, time.UTC)
	assert.Equal(t, 0, current)
}

func TestStreaks_AcrossDaylightSavingShift(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("time zone database is not available")
	}
	now := time.Date(2025, 3, 10, 0, 30, 0, 0, ny)
	logs := []hifz.DailyLog{activeDay("2025-03-08"), activeDay("2025-03-09"), activeDay("2025-03-10")}

	current, longest := Streaks(logs, now, ny)
	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)
}

func TestEstimateCompletion(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		remaining int
		target    int
		want      *time.Time
	}{
		{name: "complete", remaining: 0, target: 1, want: nil},
		{name: "zero target", remaining: 10, target: 0, want: nil},
		{name: "negative target", remaining: 10, target: -2, want: nil},
		{name: "exact division", remaining: 10, target: 2, want: ptr(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))},
		{name: "rounds up", remaining: 11, target: 2, want: ptr(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))},
		{name: "crosses a year", remaining: 604, target: 1, want: ptr(time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCompletion(tt.remaining, tt.target, now, time.UTC)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}

func TestJuzProgressOf(t *testing.T) {
	pages := touched(append(pageRange(1, 21), 22, 23, 600)...)

	got, err := JuzProgressOf(pages, 1)
	require.NoError(t, err)
	assert.Equal(t, 21, got.Memorized)
	assert.Equal(t, 21, got.Total)
	assert.Equal(t, 100, got.Percent)
	assert.True(t, got.Complete)

	got, err = JuzProgressOf(pages, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Memorized)
	assert.Equal(t, 20, got.Total)
	assert.Equal(t, 10, got.Percent)
	assert.False(t, got.Complete)

	got, err = JuzProgressOf(pages, 30)
	require.NoError(t, err)
	assert.Equal(t, 23, got.Total)
	assert.Equal(t, 4, got.Percent)

	for _, juz := range []int{0, 31, -1} {
		_, err := JuzProgressOf(pages, juz)
		assert.ErrorIs(t, err, ErrInvalidJuz)
	}
}

func TestCompletedJuzs(t *testing.T) {
	pages := touched(append(pageRange(22, 41), pageRange(582, 604)...)...)
	assert.Equal(t, []int{2, 30}, CompletedJuzs(pages))

	// move one page of juz 2 back to untouched
	pages[30] = hifz.PageRecord{PageNumber: 30, Status: hifz.StatusNone}
	assert.Equal(t, []int{30}, CompletedJuzs(pages))

	delete(pages, 600)
	assert.Empty(t, CompletedJuzs(pages))
}

func TestAllJuzProgress(t *testing.T) {
	got := AllJuzProgress(touched(pageRange(1, 604)...))
	require.Len(t, got, 30)
	for i, p := range got {
		assert.Equal(t, i+1, p.Juz)
		assert.True(t, p.Complete)
	}
}
