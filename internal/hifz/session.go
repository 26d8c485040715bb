package hifz

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=session.go -destination=../mocks/hifz/mock_session.go -package=mock_hifz

// ErrSessionDone is returned when a finished session is graded or skipped.
var ErrSessionDone = errors.New("revision session is done")

// Reviser records graded revisions.
type Reviser interface {
	RecordRevision(ctx context.Context, page int, quality Quality) (PageRecord, error)
}

// SessionSource selects and records the pages of a session. *Store implements it.
type SessionSource interface {
	Reviser
	RevisionList(mode FilterMode) ([]PageRecord, error)
}

// SessionResult is one graded page of a session.
type SessionResult struct {
	Page    int
	Quality Quality
	Record  PageRecord
}

// RevisionSession walks a fixed list of pages, grading or skipping each one.
type RevisionSession struct {
	source  SessionSource
	mode    FilterMode
	pages   []PageRecord
	index   int
	results []SessionResult
}

// NewRevisionSession starts a session over the pages source selects for mode.
func NewRevisionSession(source SessionSource, mode FilterMode) (*RevisionSession, error) {
	pages, err := source.RevisionList(mode)
	if err != nil {
		return nil, fmt.Errorf("RevisionList(%s) > %w", mode, err)
	}
	return &RevisionSession{
		source: source,
		mode:   mode,
		pages:  pages,
	}, nil
}

// Mode returns the filter the session was built from.
func (s *RevisionSession) Mode() FilterMode {
	return s.mode
}

// Len returns the number of pages in the session.
func (s *RevisionSession) Len() int {
	return len(s.pages)
}

// Position returns the zero-based index of the current page.
func (s *RevisionSession) Position() int {
	return s.index
}

// Done reports whether every page was graded or skipped.
func (s *RevisionSession) Done() bool {
	return s.index >= len(s.pages)
}

// Current returns the page being revised. ok is false once the session is done.
func (s *RevisionSession) Current() (PageRecord, bool) {
	if s.Done() {
		return PageRecord{}, false
	}
	return s.pages[s.index], true
}

// Grade records the current page with quality and advances.
// The session does not advance when recording fails, unless the source
// applied the revision and only failed to persist it (ErrNotPersisted).
func (s *RevisionSession) Grade(ctx context.Context, quality Quality) (PageRecord, error) {
	current, ok := s.Current()
	if !ok {
		return PageRecord{}, ErrSessionDone
	}
	if !quality.Valid() {
		return PageRecord{}, fmt.Errorf("%w: %q", ErrInvalidQuality, quality)
	}
	record, err := s.source.RecordRevision(ctx, current.PageNumber, quality)
	if err != nil && !errors.Is(err, ErrNotPersisted) {
		return record, fmt.Errorf("RecordRevision(%d) > %w", current.PageNumber, err)
	}
	s.results = append(s.results, SessionResult{
		Page:    current.PageNumber,
		Quality: quality,
		Record:  record,
	})
	s.index++
	if err != nil {
		return record, fmt.Errorf("RecordRevision(%d) > %w", current.PageNumber, err)
	}
	return record, nil
}

// Skip advances without recording.
func (s *RevisionSession) Skip() error {
	if s.Done() {
		return ErrSessionDone
	}
	s.index++
	return nil
}

// Results returns the graded pages in order.
func (s *RevisionSession) Results() []SessionResult {
	return append([]SessionResult(nil), s.results...)
}

// QualityCounts tallies the grades given so far.
func (s *RevisionSession) QualityCounts() map[Quality]int {
	counts := make(map[Quality]int, len(Qualities))
	for _, q := range Qualities {
		counts[q] = 0
	}
	for _, r := range s.results {
		counts[r.Quality]++
	}
	return counts
}

// Restart selects the pages again, since grading moves due dates, and
// forgets the results.
func (s *RevisionSession) Restart() error {
	pages, err := s.source.RevisionList(s.mode)
	if err != nil {
		return fmt.Errorf("RevisionList(%s) > %w", s.mode, err)
	}
	s.pages = pages
	s.index = 0
	s.results = nil
	return nil
}
