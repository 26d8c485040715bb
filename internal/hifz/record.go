// Package hifz tracks per-page Quran memorization state and schedules page revisions with SM-2.
package hifz

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPage     = errors.New("invalid page")
	ErrInvalidRange    = errors.New("invalid page range")
	ErrInvalidQuality  = errors.New("invalid revision quality")
	ErrInvalidStatus   = errors.New("invalid page status")
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrNotPersisted wraps a storage failure after a change was already
	// applied in memory. The change stays visible for the rest of the process.
	ErrNotPersisted = errors.New("change applied but not persisted")
)

// PageStatus is the memorization state of a page.
type PageStatus string

const (
	StatusNone      PageStatus = "none"
	StatusMemorized PageStatus = "memorized"
	StatusWeak      PageStatus = "weak"
	StatusStrong    PageStatus = "strong"
)

// ParseStatus parses a status that a page can be moved to. "none" is rejected
// because a touched page never goes back to untouched.
func ParseStatus(s string) (PageStatus, error) {
	switch status := PageStatus(s); status {
	case StatusMemorized, StatusWeak, StatusStrong:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Quality is the self-rated recall of a page during a revision.
type Quality string

const (
	QualityAgain Quality = "again"
	QualityHard  Quality = "hard"
	QualityGood  Quality = "good"
	QualityEasy  Quality = "easy"
)

// Qualities lists the ratings from worst to best.
var Qualities = []Quality{QualityAgain, QualityHard, QualityGood, QualityEasy}

// grades maps ratings onto the SM-2 0-5 scale. 1 and 3 are intentionally unused.
var grades = map[Quality]int{
	QualityAgain: 0,
	QualityHard:  2,
	QualityGood:  4,
	QualityEasy:  5,
}

// ParseQuality parses one of again, hard, good, easy.
func ParseQuality(s string) (Quality, error) {
	q := Quality(s)
	if !q.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
	return q, nil
}

// Valid reports whether q is one of the four ratings.
func (q Quality) Valid() bool {
	_, ok := grades[q]
	return ok
}

// Grade returns the SM-2 grade of q.
func (q Quality) Grade() int {
	return grades[q]
}

// PageRecord is the memorization and scheduling state of one page.
type PageRecord struct {
	PageNumber      int        `json:"pageNum" yaml:"page"`
	Status          PageStatus `json:"status" yaml:"status"`
	MemorizedAt     *time.Time `json:"memorizedAt,omitempty" yaml:"memorized_at,omitempty"`
	LastRevisedAt   *time.Time `json:"lastRevisedAt,omitempty" yaml:"last_revised_at,omitempty"`
	NextRevisionDue *time.Time `json:"nextRevisionDue,omitempty" yaml:"next_revision_due,omitempty"`
	RevisionCount   int        `json:"revisionCount" yaml:"revision_count"`
	EaseFactor      float64    `json:"easeFactor" yaml:"ease_factor"`
	Interval        int        `json:"interval" yaml:"interval"`
	LastQuality     Quality    `json:"quality,omitempty" yaml:"quality,omitempty"`
}

// NewPageRecord returns the untouched record of a page.
func NewPageRecord(page int) PageRecord {
	return PageRecord{
		PageNumber:    page,
		Status:        StatusNone,
		RevisionCount: 0,
		EaseFactor:    DefaultEaseFactor,
		Interval:      1,
	}
}

// Touched reports whether the page has ever left the none status.
func (r PageRecord) Touched() bool {
	return r.Status != StatusNone && r.Status != ""
}

// IsDue reports whether the page should be revised at now.
// A touched page without a due date is always due.
func (r PageRecord) IsDue(now time.Time) bool {
	if !r.Touched() {
		return false
	}
	return r.NextRevisionDue == nil || !r.NextRevisionDue.After(now)
}

// IsOverdue reports whether the due date is strictly before now.
func (r PageRecord) IsOverdue(now time.Time) bool {
	if !r.Touched() || r.NextRevisionDue == nil {
		return false
	}
	return r.NextRevisionDue.Before(now)
}

func (r PageRecord) clone() PageRecord {
	r.MemorizedAt = cloneTime(r.MemorizedAt)
	r.LastRevisedAt = cloneTime(r.LastRevisedAt)
	r.NextRevisionDue = cloneTime(r.NextRevisionDue)
	return r
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
