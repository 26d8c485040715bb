// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file storing hifz data as a YAML file
// under tmpDir with the clock in UTC. Returns the path to the generated
// config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return writeConfig(t, tmpDir, fmt.Sprintf("  driver: file\n  file_path: %s\n", filepath.Join(tmpDir, "hifz.yml")))
}

// SetupTestConfigWithSQLite creates a config file backed by a SQLite
// database under tmpDir.
func SetupTestConfigWithSQLite(t *testing.T, tmpDir string) string {
	t.Helper()
	return writeConfig(t, tmpDir, fmt.Sprintf("  driver: sqlite\n  sqlite_path: %s\n", filepath.Join(tmpDir, "hifz.db")))
}

func writeConfig(t *testing.T, tmpDir, storageConfig string) string {
	t.Helper()

	reportDir := filepath.Join(tmpDir, "reports")
	require.NoError(t, os.MkdirAll(reportDir, 0755))

	configContent := fmt.Sprintf(`storage:
%s  write_attempts: 1
  retry_delay_ms: 0
clock:
  timezone: UTC
outputs:
  report_directory: %s
`,
		storageConfig,
		reportDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
