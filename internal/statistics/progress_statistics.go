package statistics

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/at-ishikawa/hafiz/internal/hifz"
	"github.com/at-ishikawa/hafiz/internal/quran"
)

var ErrInvalidJuz = errors.New("invalid juz")

// Input is everything the statistics are derived from
type Input struct {
	Pages    map[int]hifz.PageRecord
	Logs     []hifz.DailyLog
	Settings hifz.Settings
	Now      time.Time
	Location *time.Location
}

// InputOf snapshots the current state of a store
func InputOf(store *hifz.Store) Input {
	return Input{
		Pages:    store.Pages(),
		Logs:     store.Logs(),
		Settings: store.Settings(),
		Now:      store.Now(),
		Location: store.Location(),
	}
}

// Stats is the progress snapshot shown to the user
type Stats struct {
	TotalMemorized  int // Pages whose status is not none
	TotalStrong     int
	TotalWeak       int
	Remaining       int
	PercentComplete int // round(TotalMemorized / 604 * 100)

	TodayMemorized      int
	TodayRevised        int
	DailyMemorizeTarget int
	DailyReviseTarget   int

	CurrentStreak int // Consecutive active days ending today, 0 when today is inactive
	LongestStreak int

	// Midnight of the projected completion day, nil when complete or the target is not positive
	EstimatedCompletionDate *time.Time
	CompletedJuzs           []int
}

// JuzProgress is the memorization progress of one juz
type JuzProgress struct {
	Juz       int
	Range     quran.PageRange
	Memorized int
	Total     int
	Percent   int
	Complete  bool
}

// Calculate derives Stats from in. Nothing is cached; every call walks the
// whole state.
func Calculate(in Input) Stats {
	loc := in.Location
	if loc == nil {
		loc = time.Local
	}

	var stats Stats
	for _, record := range in.Pages {
		if !record.Touched() {
			continue
		}
		stats.TotalMemorized++
		switch record.Status {
		case hifz.StatusStrong:
			stats.TotalStrong++
		case hifz.StatusWeak:
			stats.TotalWeak++
		}
	}
	stats.Remaining = quran.TotalPages - stats.TotalMemorized
	stats.PercentComplete = percent(stats.TotalMemorized, quran.TotalPages)

	today := hifz.DayKey(in.Now, loc)
	for _, l := range in.Logs {
		if l.Date == today {
			stats.TodayMemorized = len(l.PagesMemorized)
			stats.TodayRevised = len(l.PagesRevised)
			break
		}
	}
	stats.DailyMemorizeTarget = in.Settings.DailyMemorizeTarget
	stats.DailyReviseTarget = in.Settings.DailyReviseTarget

	stats.CurrentStreak, stats.LongestStreak = Streaks(in.Logs, in.Now, loc)
	stats.EstimatedCompletionDate = EstimateCompletion(stats.Remaining, in.Settings.DailyMemorizeTarget, in.Now, loc)
	stats.CompletedJuzs = CompletedJuzs(in.Pages)
	return stats
}

// Streaks returns the run of consecutive active days ending today, and the
// longest such run anywhere in logs. A day is active when it has any memorized
// or revised page.
func Streaks(logs []hifz.DailyLog, now time.Time, loc *time.Location) (current int, longest int) {
	active := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		if l.HasActivity() {
			active[l.Date] = struct{}{}
		}
	}

	day, err := parseDay(hifz.DayKey(now, loc))
	if err != nil {
		return 0, 0
	}
	for {
		if _, ok := active[day.Format(hifz.DayKeyLayout)]; !ok {
			break
		}
		current++
		day = day.AddDate(0, 0, -1)
	}

	days := make([]time.Time, 0, len(active))
	for key := range active {
		d, err := parseDay(key)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	run := 0
	for i, d := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return current, longest
}

// parseDay parses a day key as a UTC calendar date, so adding days never
// crosses a DST shift.
func parseDay(key string) (time.Time, error) {
	return time.ParseInLocation(hifz.DayKeyLayout, key, time.UTC)
}

// EstimateCompletion returns midnight of the day all remaining pages are
// memorized at target pages per day.
func EstimateCompletion(remaining, target int, now time.Time, loc *time.Location) *time.Time {
	if remaining <= 0 || target <= 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	daysNeeded := (remaining + target - 1) / target
	local := now.In(loc)
	date := time.Date(local.Year(), local.Month(), local.Day()+daysNeeded, 0, 0, 0, 0, loc)
	return &date
}

// JuzProgressOf returns the progress of juz, numbered from 1.
func JuzProgressOf(pages map[int]hifz.PageRecord, juz int) (JuzProgress, error) {
	r, err := quran.JuzRange(juz)
	if err != nil {
		return JuzProgress{}, fmt.Errorf("%w: %d", ErrInvalidJuz, juz)
	}

	memorized := 0
	for page := r.Start; page <= r.End; page++ {
		if record, ok := pages[page]; ok && record.Touched() {
			memorized++
		}
	}
	p := percent(memorized, r.Len())
	return JuzProgress{
		Juz:       juz,
		Range:     r,
		Memorized: memorized,
		Total:     r.Len(),
		Percent:   p,
		Complete:  p == 100,
	}, nil
}

// AllJuzProgress returns the progress of every juz in order
func AllJuzProgress(pages map[int]hifz.PageRecord) []JuzProgress {
	progress := make([]JuzProgress, 0, quran.JuzCount)
	for juz := 1; juz <= quran.JuzCount; juz++ {
		p, err := JuzProgressOf(pages, juz)
		if err != nil {
			continue
		}
		progress = append(progress, p)
	}
	return progress
}

// CompletedJuzs returns the numbers of the juzs at 100 percent
func CompletedJuzs(pages map[int]hifz.PageRecord) []int {
	completed := []int{}
	for _, p := range AllJuzProgress(pages) {
		if p.Complete {
			completed = append(completed, p.Juz)
		}
	}
	return completed
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
