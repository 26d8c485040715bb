package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hafiz/internal/hifz"
	"github.com/at-ishikawa/hafiz/internal/statistics"
)

func TestNewProgressReport(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, err := store.MarkRangeMemorized(ctx, 1, 21)
	require.NoError(t, err)
	_, err = store.RecordRevision(ctx, 2, hifz.QualityAgain)
	require.NoError(t, err)

	report := NewProgressReport(statistics.InputOf(store), store.PagesForRevision())

	assert.Equal(t, "2025-03-10 09:00", report.GeneratedAt)
	assert.Equal(t, 604, report.TotalPages)
	assert.Equal(t, 21, report.TotalMemorized)
	assert.Equal(t, 1, report.TotalWeak)
	assert.Equal(t, 3, report.PercentComplete)
	assert.Equal(t, 1, report.TodayRevised)
	assert.Equal(t, 1, report.CurrentStreak)
	assert.Equal(t, "2026-10-14", report.EstimatedCompletion)
	assert.Equal(t, []string{"1"}, report.CompletedJuzs)
	require.Len(t, report.Juzs, 30)
	assert.True(t, report.Juzs[0].Complete)
	assert.Equal(t, 0, report.Juzs[1].Memorized)
	// pages memorized today are first due tomorrow
	assert.Empty(t, report.Due)
}

func TestWriteProgressReportFiles(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.MarkMemorized(ctx, 5))

	tests := []struct {
		name      string
		withPDF   bool
		wantFiles []string
	}{
		{name: "markdown only", wantFiles: []string{"hifz-report-2025-03-10.md"}},
		{name: "markdown and pdf", withPDF: true, wantFiles: []string{"hifz-report-2025-03-10.md", "hifz-report-2025-03-10.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := filepath.Join(t.TempDir(), "reports")

			paths, err := WriteProgressReportFiles(store, outputDir, "", tt.withPDF)
			require.NoError(t, err)
			require.Len(t, paths, len(tt.wantFiles))
			for i, want := range tt.wantFiles {
				assert.Equal(t, want, filepath.Base(paths[i]))
				_, err := os.Stat(paths[i])
				assert.NoError(t, err)
			}

			content, err := os.ReadFile(paths[0])
			require.NoError(t, err)
			assert.Contains(t, string(content), "| Memorized | 1 / 604 pages (0%) |")
		})
	}
}
