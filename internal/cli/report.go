package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/hafiz/internal/hifz"
	"github.com/at-ishikawa/hafiz/internal/quran"
	"github.com/at-ishikawa/hafiz/internal/statistics"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

var statusColors = map[hifz.PageStatus]*color.Color{
	hifz.StatusStrong:    color.New(color.FgGreen),
	hifz.StatusMemorized: color.New(color.FgCyan),
	hifz.StatusWeak:      color.New(color.FgRed),
	hifz.StatusNone:      color.New(color.Faint),
}

var qualityColors = map[hifz.Quality]*color.Color{
	hifz.QualityAgain: color.New(color.FgRed),
	hifz.QualityHard:  color.New(color.FgYellow),
	hifz.QualityGood:  color.New(color.FgCyan),
	hifz.QualityEasy:  color.New(color.FgGreen),
}

// formatStatus pads before coloring so escape codes don't break column widths.
func formatStatus(status hifz.PageStatus, width int) string {
	text := fmt.Sprintf("%-*s", width, status)
	if c, ok := statusColors[status]; ok {
		return c.Sprint(text)
	}
	return text
}

func formatQuality(q hifz.Quality) string {
	if q == "" {
		return "-"
	}
	if c, ok := qualityColors[q]; ok {
		return c.Sprint(string(q))
	}
	return string(q)
}

func formatTime(t *time.Time, loc *time.Location, layout string) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format(layout)
}

// WriteStats prints the progress summary.
func WriteStats(w io.Writer, stats statistics.Stats, loc *time.Location) {
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(w, "Hifz Statistics")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-15s%d / %d pages (%d%%)\n", "Memorized:", stats.TotalMemorized, quran.TotalPages, stats.PercentComplete)
	fmt.Fprintf(w, "%-15s%d\n", "Strong:", stats.TotalStrong)
	fmt.Fprintf(w, "%-15s%d\n", "Weak:", stats.TotalWeak)
	fmt.Fprintf(w, "%-15s%d\n", "Remaining:", stats.Remaining)
	fmt.Fprintf(w, "%-15s%d / %d memorized, %d / %d revised\n", "Today:",
		stats.TodayMemorized, stats.DailyMemorizeTarget,
		stats.TodayRevised, stats.DailyReviseTarget,
	)
	fmt.Fprintf(w, "%-15s%d days (longest %d)\n", "Streak:", stats.CurrentStreak, stats.LongestStreak)
	fmt.Fprintf(w, "%-15s%s\n", "Completion:", formatTime(stats.EstimatedCompletionDate, loc, dateLayout))
	if len(stats.CompletedJuzs) > 0 {
		fmt.Fprintf(w, "%-15s%s\n", "Completed juz:", joinInts(stats.CompletedJuzs))
	}
}

// WriteJuzProgress prints one line per juz.
func WriteJuzProgress(w io.Writer, progress []statistics.JuzProgress) {
	fmt.Fprintf(w, "%-4s  %-9s  %-9s  %s\n", "Juz", "Pages", "Memorized", "Percent")
	fmt.Fprintf(w, "%-4s  %-9s  %-9s  %s\n", "---", "-----", "---------", "-------")
	for _, p := range progress {
		line := fmt.Sprintf("%-4d  %-9s  %-9s  %3d%% %s",
			p.Juz,
			fmt.Sprintf("%d-%d", p.Range.Start, p.Range.End),
			fmt.Sprintf("%d / %d", p.Memorized, p.Total),
			p.Percent,
			progressBar(p.Percent, 20),
		)
		if p.Complete {
			line = color.GreenString("%s", line)
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// WritePageList prints records as a table with their due dates.
func WritePageList(w io.Writer, title string, records []hifz.PageRecord, now time.Time, loc *time.Location) {
	color.New(color.Bold).Fprintf(w, "%s (%d)\n", title, len(records))
	if len(records) == 0 {
		fmt.Fprintln(w, "No pages.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-18s  %-3s  %-9s  %s\n", "Page", "Surah", "Juz", "Status", "Due")
	fmt.Fprintf(w, "%-4s  %-18s  %-3s  %-9s  %s\n", "----", "-----", "---", "------", "---")
	for _, r := range records {
		due := formatTime(r.NextRevisionDue, loc, dateTimeLayout)
		if r.IsOverdue(now) {
			due = color.RedString("%s (overdue)", due)
		}
		fmt.Fprintf(w, "%-4d  %-18s  %-3d  %s  %s\n",
			r.PageNumber,
			quran.SurahByPage(r.PageNumber).EnglishName,
			quran.JuzOfPage(r.PageNumber),
			formatStatus(r.Status, 9),
			due,
		)
	}
}

// WritePageDetail prints every field of a page record.
func WritePageDetail(w io.Writer, r hifz.PageRecord, loc *time.Location) {
	surah := quran.SurahByPage(r.PageNumber)
	color.New(color.Bold).Fprintf(w, "Page %d", r.PageNumber)
	fmt.Fprintf(w, " (%s %s, juz %d)\n", surah.Name, surah.EnglishName, quran.JuzOfPage(r.PageNumber))
	fmt.Fprintf(w, "%-16s%s\n", "Status:", formatStatus(r.Status, 0))
	fmt.Fprintf(w, "%-16s%s\n", "Memorized at:", formatTime(r.MemorizedAt, loc, dateTimeLayout))
	fmt.Fprintf(w, "%-16s%s\n", "Last revised:", formatTime(r.LastRevisedAt, loc, dateTimeLayout))
	fmt.Fprintf(w, "%-16s%s\n", "Next revision:", formatTime(r.NextRevisionDue, loc, dateTimeLayout))
	fmt.Fprintf(w, "%-16s%d\n", "Revisions:", r.RevisionCount)
	fmt.Fprintf(w, "%-16s%.2f\n", "Ease factor:", r.EaseFactor)
	fmt.Fprintf(w, "%-16s%d days\n", "Interval:", r.Interval)
	fmt.Fprintf(w, "%-16s%s\n", "Last quality:", formatQuality(r.LastQuality))
}

// WriteActivity prints monthly activity, newest first.
func WriteActivity(w io.Writer, result statistics.ActivityResult) {
	if len(result.Periods) == 0 {
		fmt.Fprintln(w, "No activity found for the specified period.")
		return
	}

	fmt.Fprintln(w, "Activity Report")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s  %-11s  %-24s  %-24s\n", "Period", "Active days", "Memorized (Total/Unique)", "Revised (Total/Unique)")
	fmt.Fprintf(w, "%-10s  %-11s  %-24s  %-24s\n", "------", "-----------", "------------------------", "----------------------")

	for _, s := range result.Periods {
		fmt.Fprintf(w, "%-10s  %-11d  %-24s  %-24s\n",
			s.Period,
			s.ActiveDays,
			fmt.Sprintf("%d / %d", s.MemorizedCount, s.MemorizedUnique),
			fmt.Sprintf("%d / %d", s.RevisedCount, s.RevisedUnique),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s  %-11d  %-24s  %-24s\n",
		"Totals:",
		result.Aggregate.ActiveDays,
		fmt.Sprintf("%d / %d", result.Aggregate.MemorizedCount, result.Aggregate.MemorizedUnique),
		fmt.Sprintf("%d / %d", result.Aggregate.RevisedCount, result.Aggregate.RevisedUnique),
	)
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ", ")
}
