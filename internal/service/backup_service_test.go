package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/config"
)

func newTestBackupService(t *testing.T, conf config.BackupConf) (*BackupService, *JournalService) {
	t.Helper()
	journal := newTestJournalService(t)
	backup := NewBackupService(zap.NewNop(), journal, &config.Config{Backup: conf})
	return backup, journal
}

func TestBackupRunOnce_WritesSnapshotFile(t *testing.T) {
	dir := t.TempDir()
	backup, journal := newTestBackupService(t, config.BackupConf{
		Dir:              dir,
		FilenameTemplate: "snap-{{date}}.json",
	})
	ctx := context.Background()

	_, err := journal.AddTrade(ctx, validDraft())
	require.NoError(t, err)

	require.NoError(t, backup.RunOnce(ctx))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "snap-"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var snapshot JournalSnapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Len(t, snapshot.Trades, 1)
	assert.InDelta(t, DefaultInitialCapital, snapshot.InitialCapital, 1e-9)
}

func TestBackupStart_DisabledIsNoop(t *testing.T) {
	backup, _ := newTestBackupService(t, config.BackupConf{Enabled: false})

	require.NoError(t, backup.Start(context.Background()))
	backup.Stop()
}

func TestBackupStart_RejectsInvalidSchedule(t *testing.T) {
	backup, _ := newTestBackupService(t, config.BackupConf{
		Enabled:  true,
		Schedule: "not a cron spec",
	})

	assert.Error(t, backup.Start(context.Background()))
}
