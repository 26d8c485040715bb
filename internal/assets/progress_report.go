package assets

import (
	_ "embed"
	"fmt"
	"io"
)

//go:embed templates/progress-report.md.go.tmpl
var fallbackProgressReportTemplate string

const progressReportTemplateName = "progress-report.md.go.tmpl"

// ProgressReport is the top-level data structure for progress report templates
type ProgressReport struct {
	GeneratedAt         string
	TotalPages          int
	TotalMemorized      int
	TotalStrong         int
	TotalWeak           int
	Remaining           int
	PercentComplete     int
	TodayMemorized      int
	TodayRevised        int
	DailyMemorizeTarget int
	DailyReviseTarget   int
	CurrentStreak       int
	LongestStreak       int
	// Empty when there is no estimate
	EstimatedCompletion string
	CompletedJuzs       []string
	Juzs                []JuzRow
	Due                 []DueRow
}

// JuzRow is one line of the juz table
type JuzRow struct {
	Juz       int
	Start     int
	End       int
	Memorized int
	Total     int
	Percent   int
	Complete  bool
}

// DueRow is a page waiting for revision
type DueRow struct {
	Page    int
	Surah   string
	Status  string
	Due     string
	Overdue bool
}

func WriteProgressReport(output io.Writer, templatePath string, templateData ProgressReport) error {
	tmpl, err := parseTemplateWithFallback(templatePath, progressReportTemplateName, fallbackProgressReportTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
