// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" or "~/" in path with the current user's
// home directory. Other forms (such as "~user") are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// AbsPath expands a leading "~" and then makes path absolute relative to the
// process working directory. It returns os.ErrInvalid for an empty path.
func AbsPath(path string) (string, error) {
	if path == "" {
		return "", os.ErrInvalid
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	return filepath.Abs(expanded)
}

// WorkDir resolves the directory used as the scoping key for local settings.
// An empty dir means the process working directory. Relative paths are made
// absolute; the directory itself is not required to exist.
func WorkDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return AbsPath(dir)
}
