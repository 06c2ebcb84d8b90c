// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tfctl/boshctl/internal/log"
)

// OwnerOnly is the permission applied to every file this package writes.
const OwnerOnly os.FileMode = 0o600

// FS is the file-system surface consumed by the configuration store.
type FS interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Chmod(path string, mode os.FileMode) error
	Stat(path string) (os.FileInfo, error)
}

// OS is the FS backed by the host file system.
type OS struct{}

var _ FS = OS{}

// Exists reports whether anything is present at path. Stat errors other than
// not-exist are reported as present so the subsequent read surfaces them.
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// ReadFile returns the whole content of path.
func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Chmod changes the mode of path.
func (OS) Chmod(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}

// Stat returns file info for path.
func (OS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// WriteFile replaces path with data. The bytes are written to a temporary
// file next to path, synced, and renamed over it. The result is always
// OwnerOnly.
func (OS) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, OwnerOnly); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s into place: %w", filepath.Base(path), err)
	}

	log.Debugf("file write: path=%s bytes=%d", path, len(data))
	return nil
}
