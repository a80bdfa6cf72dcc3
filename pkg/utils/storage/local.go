package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage publishes into a directory served statically under the public root.
// The staging directory must live outside the public root.
type LocalStorage struct {
	publicDir  string
	uploadDir  string
	stagingDir string
}

func NewLocalStorage(publicDir, uploadDir, stagingDir string) (*LocalStorage, error) {
	for _, dir := range []string{filepath.Join(publicDir, uploadDir), stagingDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	return &LocalStorage{
		publicDir:  publicDir,
		uploadDir:  uploadDir,
		stagingDir: stagingDir,
	}, nil
}

func (s *LocalStorage) Stage(ctx context.Context, name string, r io.Reader, _ string) (*Staged, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.stagingDir, name)

	// O_EXCL turns a filename collision into an error instead of an overwrite.
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &Staged{Name: name, Path: publicPath(s.uploadDir, name)}, nil
}

func (s *LocalStorage) Publish(_ context.Context, staged *Staged) error {
	src := filepath.Join(s.stagingDir, staged.Name)
	dst := filepath.Join(s.publicDir, filepath.FromSlash(staged.Path))

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	// Staging and public dirs may sit on different filesystems.
	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to publish file: %w", err)
	}
	return os.Remove(src)
}

func (s *LocalStorage) Discard(_ context.Context, staged *Staged) error {
	err := os.Remove(filepath.Join(s.stagingDir, staged.Name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) SweepStaging(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.stagingDir)
	if err != nil {
		return 0, fmt.Errorf("failed to list staging directory: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.stagingDir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
