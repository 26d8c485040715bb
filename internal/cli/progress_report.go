package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/at-ishikawa/hafiz/internal/assets"
	"github.com/at-ishikawa/hafiz/internal/hifz"
	"github.com/at-ishikawa/hafiz/internal/pdf"
	"github.com/at-ishikawa/hafiz/internal/quran"
	"github.com/at-ishikawa/hafiz/internal/statistics"
)

// NewProgressReport builds the template data of the markdown progress report.
func NewProgressReport(in statistics.Input, due []hifz.PageRecord) assets.ProgressReport {
	loc := in.Location
	if loc == nil {
		loc = time.Local
	}
	stats := statistics.Calculate(in)

	report := assets.ProgressReport{
		GeneratedAt:         in.Now.In(loc).Format(dateTimeLayout),
		TotalPages:          quran.TotalPages,
		TotalMemorized:      stats.TotalMemorized,
		TotalStrong:         stats.TotalStrong,
		TotalWeak:           stats.TotalWeak,
		Remaining:           stats.Remaining,
		PercentComplete:     stats.PercentComplete,
		TodayMemorized:      stats.TodayMemorized,
		TodayRevised:        stats.TodayRevised,
		DailyMemorizeTarget: stats.DailyMemorizeTarget,
		DailyReviseTarget:   stats.DailyReviseTarget,
		CurrentStreak:       stats.CurrentStreak,
		LongestStreak:       stats.LongestStreak,
	}
	if stats.EstimatedCompletionDate != nil {
		report.EstimatedCompletion = stats.EstimatedCompletionDate.Format(dateLayout)
	}
	for _, juz := range stats.CompletedJuzs {
		report.CompletedJuzs = append(report.CompletedJuzs, strconv.Itoa(juz))
	}
	for _, p := range statistics.AllJuzProgress(in.Pages) {
		report.Juzs = append(report.Juzs, assets.JuzRow{
			Juz:       p.Juz,
			Start:     p.Range.Start,
			End:       p.Range.End,
			Memorized: p.Memorized,
			Total:     p.Total,
			Percent:   p.Percent,
			Complete:  p.Complete,
		})
	}
	for _, r := range due {
		report.Due = append(report.Due, assets.DueRow{
			Page:    r.PageNumber,
			Surah:   quran.SurahByPage(r.PageNumber).EnglishName,
			Status:  string(r.Status),
			Due:     formatTime(r.NextRevisionDue, loc, dateLayout),
			Overdue: r.IsOverdue(in.Now),
		})
	}
	return report
}

// WriteProgressReportFiles writes hifz-report-<date>.md into outputDir and,
// when withPDF is set, converts it to PDF. It returns the written paths.
func WriteProgressReportFiles(store *hifz.Store, outputDir, templatePath string, withPDF bool) ([]string, error) {
	report := NewProgressReport(statistics.InputOf(store), store.PagesForRevision())

	var buf bytes.Buffer
	if err := assets.WriteProgressReport(&buf, templatePath, report); err != nil {
		return nil, fmt.Errorf("assets.WriteProgressReport() > %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}
	markdownPath := filepath.Join(outputDir, fmt.Sprintf("hifz-report-%s.md", store.Today()))
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	slog.Debug("progress report written", slog.String("path", markdownPath))

	paths := []string{markdownPath}
	if !withPDF {
		return paths, nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
	if err != nil {
		return paths, fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
	}
	return append(paths, pdfPath), nil
}
