// Package storage keeps uploaded files. Every upload is written to a staging area
// first and only becomes public once Publish is called, so a failed database
// write never leaves a reachable orphan.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"
)

// Staged is an upload that has been written but not yet published.
type Staged struct {
	Name string
	// Path is where the file will be reachable after Publish, relative to the
	// public root.
	Path string
}

type FileStorage interface {
	Stage(ctx context.Context, name string, r io.Reader, contentType string) (*Staged, error)
	Publish(ctx context.Context, staged *Staged) error
	Discard(ctx context.Context, staged *Staged) error
	// SweepStaging removes staged files older than olderThan and returns how many
	// were removed.
	SweepStaging(ctx context.Context, olderThan time.Duration) (int, error)
}

func checkName(name string) error {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}

func publicPath(uploadDir, name string) string {
	return path.Join(filepath.ToSlash(uploadDir), name)
}
