package hifz

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ScheduleUpdate holds the fields a graded revision changes on a PageRecord.
type ScheduleUpdate struct {
	EaseFactor      float64
	Interval        int
	NextRevisionDue time.Time
	LastRevisedAt   time.Time
	RevisionCount   int
	LastQuality     Quality
	Status          PageStatus
}

// Apply merges the update into record and returns the result.
func (u ScheduleUpdate) Apply(record PageRecord) PageRecord {
	due := u.NextRevisionDue
	revised := u.LastRevisedAt
	record.EaseFactor = u.EaseFactor
	record.Interval = u.Interval
	record.NextRevisionDue = &due
	record.LastRevisedAt = &revised
	record.RevisionCount = u.RevisionCount
	record.LastQuality = u.LastQuality
	record.Status = u.Status
	return record
}

// ComputeNextSchedule grades a revision of record with quality at now.
// quality must be valid; callers reject unknown ratings before calling.
func ComputeNextSchedule(record PageRecord, quality Quality, now time.Time) ScheduleUpdate {
	grade := quality.Grade()
	ef := record.EaseFactor
	if ef == 0 {
		ef = DefaultEaseFactor
	}

	interval := NextInterval(record.Interval, ef, grade, record.RevisionCount)

	return ScheduleUpdate{
		EaseFactor:      UpdateEaseFactor(ef, grade),
		Interval:        interval,
		NextRevisionDue: now.AddDate(0, 0, interval),
		LastRevisedAt:   now,
		RevisionCount:   record.RevisionCount + 1,
		LastQuality:     quality,
		Status:          statusForGrade(grade),
	}
}

// NextInterval returns the interval in days after a revision graded grade.
// The previous ease factor drives the growth, not the updated one.
func NextInterval(previousInterval int, ef float64, grade int, revisionCount int) int {
	switch {
	case grade < 3:
		return 1
	case revisionCount == 0:
		return 1
	case revisionCount == 1:
		return 6
	default:
		return int(math.Round(float64(previousInterval) * ef))
	}
}

// UpdateEaseFactor applies the SM-2 ease delta for grade, bounded below by MinEaseFactor.
// Failed revisions are penalized too.
func UpdateEaseFactor(ef float64, grade int) float64 {
	q := float64(grade)
	return math.Max(MinEaseFactor, ef+0.1-(5-q)*(0.08+(5-q)*0.02))
}

func statusForGrade(grade int) PageStatus {
	switch {
	case grade >= 4:
		return StatusStrong
	case grade >= 3:
		return StatusMemorized
	default:
		return StatusWeak
	}
}
