package cron

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_backend/pkg/utils/storage"
)

func TestSweepStagingRemovesStaleFiles(t *testing.T) {
	root := t.TempDir()
	staging := filepath.Join(root, "staging")
	files, err := storage.NewLocalStorage(filepath.Join(root, "public"), "uploads/payments", staging)
	require.NoError(t, err)

	_, err = files.Stage(context.Background(), "old.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)
	_, err = files.Stage(context.Background(), "fresh.png", strings.NewReader("y"), "image/png")
	require.NoError(t, err)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(staging, "old.png"), past, past))

	log, hook := test.NewNullLogger()
	sweepStaging(context.Background(), files, 24*time.Hour, log)

	assert.NoFileExists(t, filepath.Join(staging, "old.png"))
	assert.FileExists(t, filepath.Join(staging, "fresh.png"))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, 1, hook.LastEntry().Data["removed"])
}

type failingSweep struct{ storage.FileStorage }

func (failingSweep) SweepStaging(context.Context, time.Duration) (int, error) {
	return 0, errors.New("access denied")
}

func TestSweepStagingLogsFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	sweepStaging(context.Background(), failingSweep{}, time.Hour, log)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestInitStagingSweepCronRejectsBadSchedule(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := InitStagingSweepCron("not a schedule", failingSweep{}, time.Hour, log)
	assert.Error(t, err)

	c, err := InitStagingSweepCron("@hourly", failingSweep{}, time.Hour, log)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	c.Stop()
}
