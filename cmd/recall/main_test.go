package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/recall/internal/importer"
	"github.com/at-ishikawa/recall/internal/scheduling"
	"github.com/at-ishikawa/recall/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(t.Context(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "recall", cmd.Use)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "import", "queue", "summary", "study", "stats", "card", "serve"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestRatingFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    scheduling.Rating
		wantErr bool
	}{
		{name: "name", value: "hard", want: scheduling.Hard},
		{name: "number", value: "4", want: scheduling.Easy},
		{name: "upper case", value: "Again", want: scheduling.Again},
		{name: "out of range", value: "5", wantErr: true},
		{name: "unknown", value: "perfect", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag RatingFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "again, hard, good, easy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, scheduling.Rating(flag))
			assert.Equal(t, tt.want.String(), flag.String())
		})
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { configFile = "" })

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("database: [broken"), 0644))

	for _, name := range []string{"migrate", "import", "queue", "summary"} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "--config", path, name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration")
		})
	}
}

func TestCommands_NewCardsPerDay(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfigWithScheduling(t, tmpDir, "new_per_day: 1")
	testutil.WriteDeck(t, filepath.Join(tmpDir, "notes"), "verbs", `Q: 食べる
A: to eat

Q: 飲む
A: to drink
`)
	eatID := importer.CardID("verbs", importer.Note{Question: "食べる", Answer: "to eat"})
	drinkID := importer.CardID("verbs", importer.Note{Question: "飲む", Answer: "to drink"})

	_, err := execute(t, "--config", configPath, "migrate")
	require.NoError(t, err)
	_, err = execute(t, "--config", configPath, "import")
	require.NoError(t, err)

	out, err := execute(t, "--config", configPath, "queue")
	require.NoError(t, err)
	assert.Contains(t, out, eatID)
	assert.NotContains(t, out, drinkID)

	_, err = execute(t, "--config", configPath, "card", "grade", eatID, "--rating", "good")
	require.NoError(t, err)

	out, err = execute(t, "--config", configPath, "queue")
	require.NoError(t, err)
	assert.NotContains(t, out, eatID)
	assert.NotContains(t, out, drinkID)

	out, err = execute(t, "--config", configPath, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "new: 1\n")
	assert.Regexp(t, `next day: \d{4}-\d{2}-\d{2} 04:00 UTC`, out)
}

func TestCommands_StudyFlow(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfig(t, tmpDir)
	testutil.WriteDeck(t, filepath.Join(tmpDir, "notes"), "kanji", `Q: 山
A: mountain

Q: 川
A: river
C: 川が流れる
`)
	mountainID := importer.CardID("kanji", importer.Note{Question: "山", Answer: "mountain"})

	_, err := execute(t, "--config", configPath, "migrate")
	require.NoError(t, err)

	out, err := execute(t, "--config", configPath, "import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 files: 2 new cards, 0 unchanged")

	out, err = execute(t, "--config", configPath, "import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 files: 0 new cards, 2 unchanged")

	out, err = execute(t, "--config", configPath, "summary", "kanji")
	require.NoError(t, err)
	assert.Contains(t, out, "new: 2\n")

	out, err = execute(t, "--config", configPath, "queue")
	require.NoError(t, err)
	assert.Contains(t, out, mountainID)
	assert.Less(t, bytes.Index([]byte(out), []byte("山")), bytes.Index([]byte(out), []byte("川")))

	out, err = execute(t, "--config", configPath, "card", "grade", mountainID, "--rating", "easy")
	require.NoError(t, err)
	assert.Contains(t, out, mountainID+": review, next review 4 days from now")

	out, err = execute(t, "--config", configPath, "card", "history", mountainID)
	require.NoError(t, err)
	assert.Contains(t, out, "rating: 4")
	assert.Contains(t, out, "queue_before: new")
	assert.Contains(t, out, "queue_after: review")
	assert.Contains(t, out, "interval_days: 4")

	out, err = execute(t, "--config", configPath, "card", "suspend", mountainID)
	require.NoError(t, err)
	assert.Contains(t, out, mountainID+": suspended")

	out, err = execute(t, "--config", configPath, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "new: 1\n")
	assert.Contains(t, out, "review: 0\n")

	out, err = execute(t, "--config", configPath, "stats", "kanji")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")
	assert.Regexp(t, `TOTAL\s+1\s+0\s+0\s+-\s+1\s+1`, out)

	out, err = execute(t, "--config", configPath, "card", "unsuspend", mountainID)
	require.NoError(t, err)
	assert.Contains(t, out, mountainID+": review")

	_, err = execute(t, "--config", configPath, "card", "history", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card not found")
}
