package hifz

import (
	"slices"
	"time"
)

// DayKeyLayout is the layout of DailyLog.Date.
const DayKeyLayout = "2006-01-02"

// DailyLog records the distinct pages memorized and revised on one calendar day.
type DailyLog struct {
	Date           string `json:"date" yaml:"date"`
	PagesMemorized []int  `json:"pagesMemorized" yaml:"pages_memorized"`
	PagesRevised   []int  `json:"pagesRevised" yaml:"pages_revised"`
}

// DayKey returns the YYYY-MM-DD key of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayKeyLayout)
}

// HasActivity reports whether anything was memorized or revised that day.
func (l DailyLog) HasActivity() bool {
	return len(l.PagesMemorized) > 0 || len(l.PagesRevised) > 0
}

func (l DailyLog) clone() DailyLog {
	l.PagesMemorized = append([]int{}, l.PagesMemorized...)
	l.PagesRevised = append([]int{}, l.PagesRevised...)
	return l
}

type activity int

const (
	activityMemorized activity = iota
	activityRevised
)

// logActivity adds page to the day's set for kind, creating the day if needed.
// It reports whether the logs changed.
func logActivity(logs []DailyLog, date string, kind activity, page int) ([]DailyLog, bool) {
	idx := slices.IndexFunc(logs, func(l DailyLog) bool { return l.Date == date })
	if idx < 0 {
		logs = append(logs, DailyLog{Date: date, PagesMemorized: []int{}, PagesRevised: []int{}})
		idx = len(logs) - 1
	}

	entry := &logs[idx]
	target := &entry.PagesMemorized
	if kind == activityRevised {
		target = &entry.PagesRevised
	}
	if *target == nil {
		*target = []int{}
	}
	if slices.Contains(*target, page) {
		return logs, false
	}
	*target = append(*target, page)
	return logs, true
}

// normalizeLogs fixes nil slices from older payloads so they encode as [].
func normalizeLogs(logs []DailyLog) []DailyLog {
	if logs == nil {
		return []DailyLog{}
	}
	for i := range logs {
		if logs[i].PagesMemorized == nil {
			logs[i].PagesMemorized = []int{}
		}
		if logs[i].PagesRevised == nil {
			logs[i].PagesRevised = []int{}
		}
	}
	return logs
}
