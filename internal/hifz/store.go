package hifz

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/at-ishikawa/hafiz/internal/quran"
	"github.com/at-ishikawa/hafiz/internal/storage"
)

// Storage keys of the persisted state.
const (
	KeyPages    = "hifz_pages"
	KeySettings = "hifz_settings"
	KeyLogs     = "hifz_logs"
)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the location whose calendar defines day boundaries.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// Store owns the page records, daily logs and settings, and mirrors every
// mutation to a Storage. It is not safe for concurrent use.
type Store struct {
	storage  storage.Storage
	now      func() time.Time
	loc      *time.Location
	pages    map[int]PageRecord
	logs     []DailyLog
	settings Settings
}

// Load reads the persisted state. Read or decode failures are logged and the
// affected key starts empty, so Load never fails.
func Load(ctx context.Context, kv storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage:  kv,
		now:      time.Now,
		loc:      time.Local,
		pages:    make(map[int]PageRecord),
		logs:     []DailyLog{},
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var pages map[string]PageRecord
	if s.load(ctx, KeyPages, &pages) {
		for key, record := range pages {
			page, err := strconv.Atoi(key)
			if err != nil || !quran.ValidPage(page) {
				slog.Warn("skip a stored page record", "key", key)
				continue
			}
			record.PageNumber = page
			if record.Status == "" {
				record.Status = StatusNone
			}
			s.pages[page] = record
		}
	}

	var logs []DailyLog
	if s.load(ctx, KeyLogs, &logs) {
		s.logs = normalizeLogs(logs)
	}

	// Partial payloads keep the defaults of missing fields.
	settings := DefaultSettings()
	if s.load(ctx, KeySettings, &settings) {
		s.settings = settings
	}
	return s
}

func (s *Store) load(ctx context.Context, key string, v any) bool {
	value, found, err := s.storage.Get(ctx, key)
	if err != nil {
		slog.Error("failed to read stored state", "key", key, "error", err)
		return false
	}
	if !found || value == "" {
		return false
	}
	if err := json.Unmarshal([]byte(value), v); err != nil {
		slog.Error("failed to decode stored state", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", key, err)
	}
	if err := s.storage.Set(ctx, key, string(data)); err != nil {
		slog.Error("failed to persist state", "key", key, "error", err)
		return fmt.Errorf("%w: storage.Set(%s) > %w", ErrNotPersisted, key, err)
	}
	return nil
}

func (s *Store) savePages(ctx context.Context) error {
	pages := make(map[string]PageRecord, len(s.pages))
	for page, record := range s.pages {
		pages[strconv.Itoa(page)] = record
	}
	return s.save(ctx, KeyPages, pages)
}

func (s *Store) saveLogs(ctx context.Context) error {
	return s.save(ctx, KeyLogs, s.logs)
}

// Now returns the current instant of the store clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// Location returns the location used for day boundaries.
func (s *Store) Location() *time.Location {
	return s.loc
}

// Today returns the day key of now.
func (s *Store) Today() string {
	return DayKey(s.now(), s.loc)
}

// Record returns the stored record of page, or a default record when the page
// was never touched. It never writes.
func (s *Store) Record(page int) (PageRecord, error) {
	if !quran.ValidPage(page) {
		return PageRecord{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	if record, ok := s.pages[page]; ok {
		return record.clone(), nil
	}
	return NewPageRecord(page), nil
}

// Pages returns a copy of every stored record keyed by page number.
func (s *Store) Pages() map[int]PageRecord {
	pages := make(map[int]PageRecord, len(s.pages))
	for page, record := range s.pages {
		pages[page] = record.clone()
	}
	return pages
}

// Logs returns a copy of the daily logs in insertion order.
func (s *Store) Logs() []DailyLog {
	logs := make([]DailyLog, 0, len(s.logs))
	for _, l := range s.logs {
		logs = append(logs, l.clone())
	}
	return logs
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	return s.settings
}

// FirstUnmemorizedPage returns the lowest untouched page, or the last page
// when every page is touched.
func (s *Store) FirstUnmemorizedPage() int {
	for page := 1; page <= quran.TotalPages; page++ {
		if record, ok := s.pages[page]; !ok || !record.Touched() {
			return page
		}
	}
	return quran.TotalPages
}

// MarkMemorized moves an untouched page to memorized and schedules its first
// revision for tomorrow. A touched page keeps its record. The page is logged
// as memorized today either way.
func (s *Store) MarkMemorized(ctx context.Context, page int) error {
	if !quran.ValidPage(page) {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	now := s.now()

	var pagesErr error
	if s.markMemorized(page, now) {
		pagesErr = s.savePages(ctx)
	}

	var logsErr error
	var changed bool
	s.logs, changed = logActivity(s.logs, DayKey(now, s.loc), activityMemorized, page)
	if changed {
		logsErr = s.saveLogs(ctx)
	}

	if pagesErr != nil {
		return pagesErr
	}
	return logsErr
}

func (s *Store) markMemorized(page int, now time.Time) bool {
	record, ok := s.pages[page]
	if !ok {
		record = NewPageRecord(page)
	}
	if record.Touched() {
		return false
	}
	record.Status = StatusMemorized
	if record.MemorizedAt == nil {
		memorizedAt := now
		record.MemorizedAt = &memorizedAt
	}
	due := now.AddDate(0, 0, 1)
	record.NextRevisionDue = &due
	s.pages[page] = record
	return true
}

// MarkRangeMemorized marks every untouched page in [from, to] as memorized.
// Touched pages are left as they are and nothing is written to the daily log.
// It returns the pages that changed.
func (s *Store) MarkRangeMemorized(ctx context.Context, from, to int) ([]int, error) {
	if !quran.ValidPage(from) || !quran.ValidPage(to) || from > to {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, from, to)
	}
	now := s.now()

	changed := make([]int, 0, to-from+1)
	for page := from; page <= to; page++ {
		if s.markMemorized(page, now) {
			changed = append(changed, page)
		}
	}
	if len(changed) == 0 {
		return changed, nil
	}
	return changed, s.savePages(ctx)
}

// SetStatus overrides the status of a page without touching its schedule.
func (s *Store) SetStatus(ctx context.Context, page int, status PageStatus) error {
	if !quran.ValidPage(page) {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}

	record, ok := s.pages[page]
	if !ok {
		record = NewPageRecord(page)
	}
	if ok && record.Status == status {
		return nil
	}
	record.Status = status
	s.pages[page] = record
	return s.savePages(ctx)
}

// RecordRevision grades a revision of page, reschedules it, and logs it as
// revised today.
func (s *Store) RecordRevision(ctx context.Context, page int, quality Quality) (PageRecord, error) {
	if !quran.ValidPage(page) {
		return PageRecord{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	if !quality.Valid() {
		return PageRecord{}, fmt.Errorf("%w: %q", ErrInvalidQuality, quality)
	}
	now := s.now()

	record, ok := s.pages[page]
	if !ok {
		record = NewPageRecord(page)
	}
	record = ComputeNextSchedule(record, quality, now).Apply(record)
	s.pages[page] = record

	pagesErr := s.savePages(ctx)

	var logsErr error
	var changed bool
	s.logs, changed = logActivity(s.logs, DayKey(now, s.loc), activityRevised, page)
	if changed {
		logsErr = s.saveLogs(ctx)
	}

	if pagesErr != nil {
		return record.clone(), pagesErr
	}
	return record.clone(), logsErr
}

// UpdateSettings merges a partial update into the settings.
func (s *Store) UpdateSettings(ctx context.Context, update SettingsUpdate) (Settings, error) {
	if err := update.Validate(); err != nil {
		return s.settings, err
	}
	s.settings = update.apply(s.settings)
	return s.settings, s.save(ctx, KeySettings, s.settings)
}

// ResetAll clears every page record and daily log. Settings survive.
func (s *Store) ResetAll(ctx context.Context) error {
	s.pages = make(map[int]PageRecord)
	s.logs = []DailyLog{}
	if err := s.storage.Remove(ctx, KeyPages, KeyLogs); err != nil {
		slog.Error("failed to remove stored state", "error", err)
		return fmt.Errorf("%w: storage.Remove() > %w", ErrNotPersisted, err)
	}
	return nil
}

// touchedPages returns the touched page numbers in ascending order.
func (s *Store) touchedPages() []int {
	pages := make([]int, 0, len(s.pages))
	for _, page := range slices.Sorted(maps.Keys(s.pages)) {
		if s.pages[page].Touched() {
			pages = append(pages, page)
		}
	}
	return pages
}
