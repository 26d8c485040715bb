package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/hafiz/internal/cli"
	"github.com/at-ishikawa/hafiz/internal/hifz"
	"github.com/at-ishikawa/hafiz/internal/statistics"
	"github.com/at-ishikawa/hafiz/internal/testutil"
)

func TestMemorizeCommands(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	steps := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "first unmemorized page by default",
			args: []string{"memorize"},
			want: "Page 1 (Al-Fatiha, juz 1) memorized\n",
		},
		{
			name: "next default page",
			args: []string{"memorize"},
			want: "Page 2 (Al-Baqarah, juz 1) memorized\n",
		},
		{
			name: "explicit page",
			args: []string{"memorize", "22"},
			want: "Page 22 (Al-Baqarah, juz 2) memorized\n",
		},
		{
			name:    "page out of range",
			args:    []string{"memorize", "605"},
			wantErr: hifz.ErrInvalidPage,
		},
		{
			name:    "page is not a number",
			args:    []string{"memorize", "one"},
			wantErr: hifz.ErrInvalidPage,
		},
		{
			name: "range skips touched pages",
			args: []string{"memorize-range", "1", "5"},
			want: "3 of 5 pages marked as memorized\n",
		},
		{
			name:    "reversed range",
			args:    []string{"memorize-range", "5", "1"},
			wantErr: hifz.ErrInvalidRange,
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			got, err := runCommand(t, cfgPath, "", step.args...)
			if step.wantErr != nil {
				assert.ErrorIs(t, err, step.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, step.want, got)
		})
	}

	got, err := runCommand(t, cfgPath, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, got, "Memorized:     6 / 604 pages (1%)\n")
	assert.Contains(t, got, "Today:         3 / 1 memorized, 0 / 5 revised\n")
	assert.Contains(t, got, "Streak:        1 days (longest 1)\n")
}

func TestStatusAndReviseCommands(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	_, err := runCommand(t, cfgPath, "", "memorize", "10")
	require.NoError(t, err)

	got, err := runCommand(t, cfgPath, "", "status", "10", "weak")
	require.NoError(t, err)
	assert.Equal(t, "Page 10 is now weak\n", got)

	_, err = runCommand(t, cfgPath, "", "status", "10", "none")
	assert.ErrorIs(t, err, hifz.ErrInvalidStatus)

	got, err = runCommand(t, cfgPath, "", "revise", "10", "good")
	require.NoError(t, err)
	assert.Contains(t, got, "Page 10 revised (good): next revision in 1 days on ")

	_, err = runCommand(t, cfgPath, "", "revise", "10", "perfect")
	assert.ErrorIs(t, err, hifz.ErrInvalidQuality)

	got, err = runCommand(t, cfgPath, "", "page", "10")
	require.NoError(t, err)
	assert.Contains(t, got, "Page 10 (البقرة Al-Baqarah, juz 1)\n")
	assert.Contains(t, got, "Status:         strong\n")
	assert.Contains(t, got, "Revisions:      1\n")
	assert.Contains(t, got, "Last quality:   good\n")

	_, err = runCommand(t, cfgPath, "", "page", "0")
	assert.ErrorIs(t, err, hifz.ErrInvalidPage)
}

func TestDueAndOverdueCommands(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	seedPages(t, tmpDir, `{
		"50": {"pageNum": 50, "status": "weak", "nextRevisionDue": "2020-01-02T00:00:00Z", "revisionCount": 2, "easeFactor": 2.1, "interval": 1},
		"40": {"pageNum": 40, "status": "strong", "revisionCount": 0, "easeFactor": 2.5, "interval": 0},
		"30": {"pageNum": 30, "status": "memorized", "nextRevisionDue": "2999-01-01T00:00:00Z", "revisionCount": 0, "easeFactor": 2.5, "interval": 1}
	}`)

	got, err := runCommand(t, cfgPath, "", "due")
	require.NoError(t, err)
	assert.Equal(t, `Due for revision (2)
Page  Surah               Juz  Status     Due
----  -----               ---  ------     ---
40    Al-Baqarah          2    strong     -
50    Aal-E-Imran         3    weak       2020-01-02 00:00 (overdue)
`, got)

	got, err = runCommand(t, cfgPath, "", "overdue")
	require.NoError(t, err)
	assert.Contains(t, got, "Overdue (1)\n")
	assert.Contains(t, got, "50    Aal-E-Imran")
	assert.NotContains(t, got, "40    ")
}

func TestSessionCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	seedPages(t, tmpDir, `{
		"3": {"pageNum": 3, "status": "weak", "nextRevisionDue": "2020-01-01T00:00:00Z", "revisionCount": 1, "easeFactor": 2.3, "interval": 1},
		"4": {"pageNum": 4, "status": "memorized", "nextRevisionDue": "2999-01-01T00:00:00Z", "revisionCount": 0, "easeFactor": 2.5, "interval": 1}
	}`)

	_, err := runCommand(t, cfgPath, "", "session", "--mode", "soon")
	assert.ErrorContains(t, err, "unknown filter mode")

	got, err := runCommand(t, cfgPath, "4\n", "session")
	require.NoError(t, err)
	assert.Contains(t, got, "Starting a revision session with 1 pages\n")
	assert.Contains(t, got, "[1/1] Page 3 (Al-Baqarah, juz 1) weak, revised 1 times\n")
	assert.Contains(t, got, "Revised 1 of 1 pages\n")

	got, err = runCommand(t, cfgPath, "", "page", "3")
	require.NoError(t, err)
	assert.Contains(t, got, "Status:         strong\n")
	assert.Contains(t, got, "Revisions:      2\n")

	got, err = runCommand(t, cfgPath, "", "session", "--mode", "weak")
	require.NoError(t, err)
	assert.Equal(t, "No pages to revise in weak mode.\n", got)
}

func TestJuzCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	_, err := runCommand(t, cfgPath, "", "memorize-range", "22", "41")
	require.NoError(t, err)

	tests := []struct {
		name      string
		args      []string
		wantLines int
		want      string
		wantErr   error
	}{
		{name: "all juz", args: []string{"juz"}, wantLines: 32, want: "2     22-41      20 / 20    100%"},
		{name: "single juz", args: []string{"juz", "2"}, wantLines: 3, want: "2     22-41      20 / 20    100%"},
		{name: "juz out of range", args: []string{"juz", "31"}, wantErr: statistics.ErrInvalidJuz},
		{name: "juz is not a number", args: []string{"juz", "x"}, wantErr: statistics.ErrInvalidJuz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCommand(t, cfgPath, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
			assert.Len(t, strings.Split(strings.TrimSuffix(got, "\n"), "\n"), tt.wantLines)
		})
	}
}

func TestActivityCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	_, err := runCommand(t, cfgPath, "", "activity", "--month", "6")
	assert.ErrorContains(t, err, "--month requires --year")

	_, err = runCommand(t, cfgPath, "", "activity", "--year", "2025", "--month", "13")
	assert.ErrorContains(t, err, "--month must be between 1 and 12")

	got, err := runCommand(t, cfgPath, "", "activity")
	require.NoError(t, err)
	assert.Equal(t, "No activity found for the specified period.\n", got)

	_, err = runCommand(t, cfgPath, "", "memorize", "7")
	require.NoError(t, err)
	got, err = runCommand(t, cfgPath, "", "activity")
	require.NoError(t, err)
	assert.Contains(t, got, "Activity Report\n")
}

func TestSettingsCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	got, err := runCommand(t, cfgPath, "", "settings")
	require.NoError(t, err)
	assert.Equal(t, "Daily memorize target: 1\nDaily revise target:   5\nNotifications:         false\n", got)

	got, err = runCommand(t, cfgPath, "", "settings", "--revise-target", "10", "--notifications")
	require.NoError(t, err)
	assert.Equal(t, "Daily memorize target: 1\nDaily revise target:   10\nNotifications:         true\n", got)

	_, err = runCommand(t, cfgPath, "", "settings", "--memorize-target", "0")
	assert.ErrorIs(t, err, hifz.ErrInvalidSettings)

	got, err = runCommand(t, cfgPath, "", "settings")
	require.NoError(t, err)
	assert.Contains(t, got, "Daily memorize target: 1\n")
	assert.Contains(t, got, "Daily revise target:   10\n")
}

func TestResetCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	_, err := runCommand(t, cfgPath, "", "memorize-range", "1", "3")
	require.NoError(t, err)
	_, err = runCommand(t, cfgPath, "", "settings", "--memorize-target", "2")
	require.NoError(t, err)

	_, err = runCommand(t, cfgPath, "", "reset")
	assert.ErrorContains(t, err, "--yes")

	got, err := runCommand(t, cfgPath, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "All progress has been reset\n", got)

	got, err = runCommand(t, cfgPath, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, got, "Memorized:     0 / 604 pages (0%)\n")
	assert.Contains(t, got, "Today:         0 / 2 memorized, 0 / 5 revised\n")
}

func TestReportAndExportCommands(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	_, err := runCommand(t, cfgPath, "", "memorize-range", "1", "21")
	require.NoError(t, err)

	got, err := runCommand(t, cfgPath, "", "report")
	require.NoError(t, err)
	matches, err := filepath.Glob(filepath.Join(tmpDir, "reports", "hifz-report-*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Report written to "+matches[0]+"\n", got)
	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "Completed juz: 1")

	got, err = runCommand(t, cfgPath, "", "export")
	require.NoError(t, err)
	var export cli.Export
	require.NoError(t, yaml.Unmarshal([]byte(got), &export))
	assert.Equal(t, "UTC", export.Timezone)
	assert.Len(t, export.Pages, 21)
	assert.Empty(t, export.Logs)
}

func TestSQLiteStorage(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfigWithSQLite(t, tmpDir)

	_, err := runCommand(t, cfgPath, "", "memorize", "100")
	require.NoError(t, err)

	got, err := runCommand(t, cfgPath, "", "page", "100")
	require.NoError(t, err)
	assert.Contains(t, got, "Status:         memorized\n")
}
