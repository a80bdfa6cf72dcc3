package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) (*LocalStorage, string, string) {
	t.Helper()
	root := t.TempDir()
	publicDir := filepath.Join(root, "public")
	stagingDir := filepath.Join(root, "tmp", "uploads")

	s, err := NewLocalStorage(publicDir, "uploads/payments", stagingDir)
	require.NoError(t, err)
	return s, publicDir, stagingDir
}

func TestStageThenPublish(t *testing.T) {
	s, publicDir, stagingDir := newLocal(t)
	ctx := context.Background()

	staged, err := s.Stage(ctx, "1700000000000-42.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "uploads/payments/1700000000000-42.png", staged.Path)

	_, err = os.Stat(filepath.Join(publicDir, "uploads", "payments", staged.Name))
	assert.True(t, os.IsNotExist(err), "staged file must not be public yet")

	require.NoError(t, s.Publish(ctx, staged))

	data, err := os.ReadFile(filepath.Join(publicDir, "uploads", "payments", staged.Name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = os.Stat(filepath.Join(stagingDir, staged.Name))
	assert.True(t, os.IsNotExist(err))
}

func TestStageRejectsCollisionAndTraversal(t *testing.T) {
	s, _, _ := newLocal(t)
	ctx := context.Background()

	_, err := s.Stage(ctx, "same.png", strings.NewReader("a"), "image/png")
	require.NoError(t, err)
	_, err = s.Stage(ctx, "same.png", strings.NewReader("b"), "image/png")
	assert.Error(t, err)

	_, err = s.Stage(ctx, "../escape.png", strings.NewReader("c"), "image/png")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	s, _, stagingDir := newLocal(t)
	ctx := context.Background()

	staged, err := s.Stage(ctx, "gone.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)
	require.NoError(t, s.Discard(ctx, staged))
	require.NoError(t, s.Discard(ctx, staged), "discarding twice is a no-op")

	entries, err := os.ReadDir(stagingDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSweepStaging(t *testing.T) {
	s, _, stagingDir := newLocal(t)
	ctx := context.Background()

	_, err := s.Stage(ctx, "old.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)
	_, err = s.Stage(ctx, "fresh.png", strings.NewReader("y"), "image/png")
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(stagingDir, "old.png"), past, past))

	removed, err := s.SweepStaging(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(filepath.Join(stagingDir, "fresh.png"))
	assert.NoError(t, err)
}
