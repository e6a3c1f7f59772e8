// Package testutil provides shared test helpers for creating config files and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file that stores cards in a SQLite file
// under tmpDir and imports decks from tmpDir/notes.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return SetupTestConfigWithScheduling(t, tmpDir, "")
}

// SetupTestConfigWithScheduling is SetupTestConfig with extra keys under
// scheduling, one "key: value" per line.
func SetupTestConfigWithScheduling(t *testing.T, tmpDir string, scheduling string) string {
	t.Helper()

	var extra strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(scheduling), "\n") {
		if line != "" {
			extra.WriteString("  " + strings.TrimSpace(line) + "\n")
		}
	}

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "notes"), 0755))

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
day:
  timezone: UTC
  start_hour: 4
scheduling:
  fuzz: false
%simport:
  repo_directory: %s
  sources:
    - name: notes
      path: %s
`,
		filepath.Join(tmpDir, "recall.db"),
		extra.String(),
		filepath.Join(tmpDir, "repos"),
		filepath.Join(tmpDir, "notes"),
	)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

// WriteDeck writes a deck file named <deck>.md into dir and returns its path.
func WriteDeck(t *testing.T, dir, deck, content string) string {
	t.Helper()

	path := filepath.Join(dir, deck+".md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
