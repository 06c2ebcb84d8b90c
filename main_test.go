// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/boshctl/internal/version"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "long flag", args: []string{"boshctl", "--version"}, want: true},
		{name: "short flag", args: []string{"boshctl", "-v"}, want: true},
		{name: "after global flag", args: []string{"boshctl", "-c", "--version"}, want: true},
		{name: "after subcommand", args: []string{"boshctl", "target", "-v"}, want: false},
		{name: "absent", args: []string{"boshctl", "status"}, want: false},
		{name: "empty", args: []string{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, handleVersion(tt.args, &buf))
			if tt.want {
				assert.Equal(t, version.String()+"\n", buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"boshctl", "--help"}, handleNakedCommand([]string{"boshctl"}))
	assert.Equal(t, []string{"boshctl", "status"}, handleNakedCommand([]string{"boshctl", "status"}))
}

func TestRealMain(t *testing.T) {
	t.Setenv("BOSH_TARGET", "")
	cfg := filepath.Join(t.TempDir(), "bosh_config")

	var stdout, stderr bytes.Buffer
	code := realMain([]string{"boshctl", "--config", cfg, "target", "https://10.0.0.1:25555"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "Target set to https://10.0.0.1:25555\n", stdout.String())

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "target: https://10.0.0.1:25555")

	stdout.Reset()
	stderr.Reset()
	code = realMain([]string{"boshctl", "--config", cfg, "alias"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "usage: boshctl alias CATEGORY NAME VALUE")
}
