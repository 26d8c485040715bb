package statistics

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/hafiz/internal/hifz"
)

// ActivityStatistics holds activity for a time period
type ActivityStatistics struct {
	Period          string // "2025-01" for monthly
	ActiveDays      int    // Days with any memorized or revised page
	MemorizedCount  int    // Sum of pages memorized per day
	MemorizedUnique int    // Distinct pages memorized in the period
	RevisedCount    int    // Sum of pages revised per day
	RevisedUnique   int    // Distinct pages revised in the period
}

// AggregateActivity holds totals across all periods with global unique counts
type AggregateActivity struct {
	ActiveDays      int
	MemorizedCount  int
	MemorizedUnique int // Distinct pages memorized (deduplicated across periods)
	RevisedCount    int
	RevisedUnique   int // Distinct pages revised (deduplicated across periods)
}

// ActivityResult holds both per-period and aggregate activity
type ActivityResult struct {
	Periods   []ActivityStatistics
	Aggregate AggregateActivity
}

type periodData struct {
	activeDays      int
	memorizedTotal  int
	memorizedUnique map[int]struct{}
	revisedTotal    int
	revisedUnique   map[int]struct{}
}

// CalculateActivity groups daily logs by month.
// It accepts optional year and month filters (0 means no filter).
func CalculateActivity(logs []hifz.DailyLog, year, month int) ActivityResult {
	stats := make(map[string]*periodData)
	globalMemorized := make(map[int]struct{})
	globalRevised := make(map[int]struct{})

	for _, l := range logs {
		day, err := parseDay(l.Date)
		if err != nil {
			continue
		}
		if !matchesFilter(day.Year(), int(day.Month()), year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", day.Year(), int(day.Month()))
		ensurePeriodExists(stats, period)
		data := stats[period]
		if l.HasActivity() {
			data.activeDays++
		}
		data.memorizedTotal += len(l.PagesMemorized)
		data.revisedTotal += len(l.PagesRevised)
		for _, page := range l.PagesMemorized {
			data.memorizedUnique[page] = struct{}{}
			globalMemorized[page] = struct{}{}
		}
		for _, page := range l.PagesRevised {
			data.revisedUnique[page] = struct{}{}
			globalRevised[page] = struct{}{}
		}
	}

	return buildResult(stats, globalMemorized, globalRevised)
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if stats[period] == nil {
		stats[period] = &periodData{
			memorizedUnique: make(map[int]struct{}),
			revisedUnique:   make(map[int]struct{}),
		}
	}
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalMemorized, globalRevised map[int]struct{}) ActivityResult {
	periods := make([]ActivityStatistics, 0, len(stats))

	var aggregate AggregateActivity
	for period, data := range stats {
		periods = append(periods, ActivityStatistics{
			Period:          period,
			ActiveDays:      data.activeDays,
			MemorizedCount:  data.memorizedTotal,
			MemorizedUnique: len(data.memorizedUnique),
			RevisedCount:    data.revisedTotal,
			RevisedUnique:   len(data.revisedUnique),
		})
		aggregate.ActiveDays += data.activeDays
		aggregate.MemorizedCount += data.memorizedTotal
		aggregate.RevisedCount += data.revisedTotal
	}
	aggregate.MemorizedUnique = len(globalMemorized)
	aggregate.RevisedUnique = len(globalRevised)

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return ActivityResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}
