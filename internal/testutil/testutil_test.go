package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/recall/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(tmpDir, "notes"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg, err := config.Load(got)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "recall.db"), cfg.Database.Path)
	require.Len(t, cfg.Import.Sources, 1)
	assert.Equal(t, filepath.Join(tmpDir, "notes"), cfg.Import.Sources[0].Path)
	assert.False(t, cfg.ParametersFor("any").Fuzz)
}

func TestSetupTestConfigWithScheduling(t *testing.T) {
	got := SetupTestConfigWithScheduling(t, t.TempDir(), "new_per_day: 1\nreview_per_day: 7")

	cfg, err := config.Load(got)
	require.NoError(t, err)
	params := cfg.ParametersFor("any")
	assert.Equal(t, 1, params.NewPerDay)
	assert.Equal(t, 7, params.ReviewPerDay)
	assert.False(t, params.Fuzz)
}

func TestWriteDeck(t *testing.T) {
	dir := t.TempDir()
	got := WriteDeck(t, dir, "kanji", "Q: 山\nA: mountain\n")

	assert.Equal(t, filepath.Join(dir, "kanji.md"), got)
	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "Q: 山\nA: mountain\n", string(content))
}
