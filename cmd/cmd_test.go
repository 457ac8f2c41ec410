package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/export"
	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/store"
)

func TestCountArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"default", nil, 1, false},
		{"explicit", []string{"12"}, 12, false},
		{"zero", []string{"0"}, 0, false},
		{"negative", []string{"-3"}, 0, true},
		{"not a number", []string{"many"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countArg(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	buckets := []progress.DailyBucket{{Date: "2024-03-01", WordsLearned: 4}}

	require.NoError(t, writeExport(path, export.FormatCSV, buckets))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-03-01,4")
}

// isolate points config lookup and storage at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("VOCABSTREAK_STORAGE_DRIVER", "sqlite")
	t.Setenv("VOCABSTREAK_TIMEZONE", "UTC")
	t.Cleanup(func() { logger = zap.NewNop() })
	return filepath.Join(dir, "progress.db")
}

func TestLearnCommandPersists(t *testing.T) {
	db := isolate(t)

	rootCmd.SetArgs([]string{"--db", db, "learn", "12"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"--db", db, "learn", "3"})
	require.NoError(t, rootCmd.Execute())

	ctx := context.Background()
	repo, err := store.OpenSQLite(ctx, db)
	require.NoError(t, err)
	defer repo.Close()

	st, err := store.LoadState(ctx, repo, cfg.Storage.Key, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 15, st.TotalWordsLearned)
	assert.Equal(t, 1, st.CurrentStreak)
	assert.Contains(t, st.UnlockedAchievementIDs, "words_10")
	assert.Nil(t, st.LastUnlockedAchievementID, "the console watcher clears the mailbox")
}

func TestResetDeletesDocument(t *testing.T) {
	db := isolate(t)

	rootCmd.SetArgs([]string{"--db", db, "learn", "2"})
	require.NoError(t, rootCmd.Execute())
	rootCmd.SetArgs([]string{"--db", db, "reset", "--yes"})
	require.NoError(t, rootCmd.Execute())

	ctx := context.Background()
	repo, err := store.OpenSQLite(ctx, db)
	require.NoError(t, err)
	defer repo.Close()

	rec, err := repo.Load(ctx, cfg.Storage.Key)
	require.NoError(t, err)
	assert.Nil(t, rec)
}
