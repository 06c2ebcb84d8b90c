// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_WriteFileCreatesOwnerOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg")

	require.NoError(t, OS{}.WriteFile(path, []byte("a: b\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Equal(t, OwnerOnly, info.Mode().Perm())

	data, err := OS{}.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: b\n", string(data))
}

func TestOS_WriteFileReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer\n"), 0o644))

	require.NoError(t, OS{}.WriteFile(path, []byte("new\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOS_WriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "cfg")

	err := OS{}.WriteFile(path, []byte("x"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOS_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg")

	assert.False(t, OS{}.Exists(path))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	assert.True(t, OS{}.Exists(path))
	assert.True(t, OS{}.Exists(dir))
}

func TestOS_ChmodAndStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, OS{}.Chmod(path, OwnerOnly))

	info, err := OS{}.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, OwnerOnly, info.Mode().Perm())
}
