package hifz

import (
	"fmt"
	"slices"
)

// FilterMode selects the pages of a revision session.
type FilterMode string

const (
	FilterDue  FilterMode = "due"
	FilterWeak FilterMode = "weak"
	FilterAll  FilterMode = "all"
)

// ParseFilterMode parses due, weak or all.
func ParseFilterMode(s string) (FilterMode, error) {
	switch mode := FilterMode(s); mode {
	case FilterDue, FilterWeak, FilterAll:
		return mode, nil
	}
	return "", fmt.Errorf("unknown filter mode %q, expected due, weak or all", s)
}

// PagesForRevision returns the touched records due at now, earliest due date
// first. Records without a due date come first.
func (s *Store) PagesForRevision() []PageRecord {
	now := s.now()
	records := s.collect(func(r PageRecord) bool { return r.IsDue(now) })
	slices.SortStableFunc(records, compareDue)
	return records
}

// OverduePages returns the records whose due date is strictly before now.
func (s *Store) OverduePages() []PageRecord {
	now := s.now()
	records := s.collect(func(r PageRecord) bool { return r.IsOverdue(now) })
	slices.SortStableFunc(records, compareDue)
	return records
}

// RevisionList returns the records a session in mode revises.
func (s *Store) RevisionList(mode FilterMode) ([]PageRecord, error) {
	switch mode {
	case FilterDue:
		return s.PagesForRevision(), nil
	case FilterWeak:
		return s.collect(func(r PageRecord) bool { return r.Status == StatusWeak }), nil
	case FilterAll:
		return s.collect(func(r PageRecord) bool { return true }), nil
	}
	return nil, fmt.Errorf("unknown filter mode %q", mode)
}

// collect returns the touched records matching keep in page order.
func (s *Store) collect(keep func(PageRecord) bool) []PageRecord {
	var records []PageRecord
	for _, page := range s.touchedPages() {
		record := s.pages[page]
		if keep(record) {
			records = append(records, record.clone())
		}
	}
	return records
}

func compareDue(a, b PageRecord) int {
	switch {
	case a.NextRevisionDue == nil && b.NextRevisionDue == nil:
		return a.PageNumber - b.PageNumber
	case a.NextRevisionDue == nil:
		return -1
	case b.NextRevisionDue == nil:
		return 1
	}
	if c := a.NextRevisionDue.Compare(*b.NextRevisionDue); c != 0 {
		return c
	}
	return a.PageNumber - b.PageNumber
}
