// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/boshctl/internal/config"
)

// configFile writes content to a fresh config file and returns its path.
func configFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bosh_config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes boshctl against cfg with stdin as input and returns stdout.
func run(t *testing.T, cfg, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BOSH_CONFIG", "")
	t.Setenv("BOSH_TARGET", "")

	argv := append([]string{"boshctl", "--config", cfg}, args...)
	app, err := InitApp(context.Background(), argv)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	err = app.Run(context.Background(), argv)
	return out.String(), err
}

func reload(t *testing.T, cfg string) *config.Store {
	t.Helper()
	s, err := config.New(cfg, "")
	require.NoError(t, err)
	return s
}

func TestTargetCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bosh_config")

	out, err := run(t, cfg, "", "target")
	require.NoError(t, err)
	assert.Equal(t, "Target not set\n", out)

	out, err = run(t, cfg, "", "target", "--name", "prod", "https://10.0.0.1:25555")
	require.NoError(t, err)
	assert.Equal(t, "Target set to https://10.0.0.1:25555\n", out)

	out, err = run(t, cfg, "", "target")
	require.NoError(t, err)
	assert.Equal(t, "Current target is https://10.0.0.1:25555 (prod)\n", out)

	s := reload(t, cfg)
	assert.Equal(t, "https://10.0.0.1:25555", s.Target())
	assert.Equal(t, "prod", s.TargetName())
}

func TestTargetCommand_SwitchClearsDirectorInfo(t *testing.T) {
	cfg := configFile(t, `target: https://a:25555
target_name: a
target_version: 1.0
target_uuid: abc
`)

	_, err := run(t, cfg, "", "target", "https://a:25555")
	require.NoError(t, err)
	s := reload(t, cfg)
	assert.Equal(t, "a", s.TargetName())
	assert.Equal(t, "abc", s.TargetUUID())

	_, err = run(t, cfg, "", "target", "https://b:25555")
	require.NoError(t, err)
	s = reload(t, cfg)
	assert.Equal(t, "https://b:25555", s.Target())
	assert.Empty(t, s.TargetName())
	assert.Empty(t, s.TargetVersion())
	assert.Empty(t, s.TargetUUID())
}

func TestTargetCommand_ResolvesAlias(t *testing.T) {
	cfg := configFile(t, `aliases:
  target:
    micro: https://192.168.50.4:25555
`)

	out, err := run(t, cfg, "", "target", "micro")
	require.NoError(t, err)
	assert.Equal(t, "Target set to https://192.168.50.4:25555\n", out)
}

func TestLoginLogout(t *testing.T) {
	cfg := configFile(t, "target: https://a:25555\n")

	out, err := run(t, cfg, "", "login", "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Logged in as 'admin'\n", out)
	assert.Equal(t, config.Credentials{Username: "admin", Password: "secret"},
		reload(t, cfg).CredentialsFor("https://a:25555"))

	out, err = run(t, cfg, "", "logout")
	require.NoError(t, err)
	assert.Equal(t, "You are no longer logged in to 'https://a:25555'\n", out)
	assert.Equal(t, config.Credentials{}, reload(t, cfg).CredentialsFor("https://a:25555"))
}

func TestLogin_Prompts(t *testing.T) {
	cfg := configFile(t, "target: https://a:25555\n")

	out, err := run(t, cfg, "admin\nsecret\n", "login")
	require.NoError(t, err)
	assert.Equal(t, "Your username: Enter password: Logged in as 'admin'\n", out)
	assert.Equal(t, "secret", reload(t, cfg).Password("https://a:25555"))
}

func TestLogin_Errors(t *testing.T) {
	t.Run("no target", func(t *testing.T) {
		cfg := configFile(t, "{}\n")
		_, err := run(t, cfg, "", "login", "admin", "secret")
		assert.ErrorIs(t, err, config.ErrMissingTarget)
	})

	t.Run("empty username", func(t *testing.T) {
		cfg := configFile(t, "target: https://a:25555\n")
		_, err := run(t, cfg, "\n", "login")
		assert.ErrorIs(t, err, errEmptyUsername)
	})

	t.Run("target flag overrides file", func(t *testing.T) {
		cfg := configFile(t, "target: https://a:25555\n")
		_, err := run(t, cfg, "", "--target", "https://b:25555", "login", "admin", "pw")
		require.NoError(t, err)
		s := reload(t, cfg)
		assert.Equal(t, "admin", s.Username("https://b:25555"))
		assert.Empty(t, s.Username("https://a:25555"))
	})
}

func TestDeploymentCommand(t *testing.T) {
	cfg := configFile(t, "target: https://a:25555\n")
	manifest := filepath.Join(t.TempDir(), "dummy.yml")

	out, err := run(t, cfg, "", "deployment")
	require.NoError(t, err)
	assert.Equal(t, "Deployment not set\n", out)

	out, err = run(t, cfg, "", "deployment", manifest)
	require.NoError(t, err)
	assert.Equal(t, "Deployment set to '"+manifest+"'\n", out)

	out, err = run(t, cfg, "", "deployment")
	require.NoError(t, err)
	assert.Equal(t, "Current deployment is '"+manifest+"'\n", out)

	assert.Equal(t, map[string]string{"https://a:25555": manifest}, reload(t, cfg).Deployments())
}

func TestDeploymentCommand_MigratesLegacy(t *testing.T) {
	cfg := configFile(t, "target: https://a:25555\ndeployment: /path/to/deployment.yml\n")

	out, err := run(t, cfg, "", "deployment")
	require.NoError(t, err)
	assert.Equal(t, "Current deployment is '/path/to/deployment.yml'\n", out)

	s := reload(t, cfg)
	assert.False(t, s.IsLegacyDeploymentConfig())
	assert.Equal(t, map[string]string{"https://a:25555": "/path/to/deployment.yml"}, s.Deployments())
}

func TestDeploymentCommand_NoTarget(t *testing.T) {
	cfg := configFile(t, "{}\n")
	_, err := run(t, cfg, "", "deployment", "/tmp/dummy.yml")
	assert.ErrorIs(t, err, config.ErrMissingTarget)
}

func TestDeploymentListAndRemove(t *testing.T) {
	cfg := configFile(t, `target: https://a:25555
deployment:
  https://a:25555: /a.yml
  https://b:25555: /b.yml
`)

	out, err := run(t, cfg, "", "deployment", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "*")
	assert.Contains(t, lines[0], "/a.yml")
	assert.NotContains(t, lines[1], "*")

	out, err = run(t, cfg, "", "deployment", "ls", "-o", "json")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{"https://a:25555": "/a.yml", "https://b:25555": "/b.yml"}, got)

	out, err = run(t, cfg, "", "deployment", "rm", "https://b:25555")
	require.NoError(t, err)
	assert.Equal(t, "Deployment for 'https://b:25555' removed\n", out)
	assert.Equal(t, map[string]string{"https://a:25555": "/a.yml"}, reload(t, cfg).Deployments())
}

func TestAliasCommands(t *testing.T) {
	cfg := configFile(t, "{}\n")

	out, err := run(t, cfg, "", "alias", "target", "micro", "https://192.168.50.4:25555")
	require.NoError(t, err)
	assert.Equal(t, "Alias 'micro' created for target 'https://192.168.50.4:25555'\n", out)

	_, err = run(t, cfg, "", "alias", "cmd", "st", "status")
	require.NoError(t, err)

	out, err = run(t, cfg, "", "aliases", "-o", "json")
	require.NoError(t, err)
	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]map[string]string{
		"cmd":    {"st": "status"},
		"target": {"micro": "https://192.168.50.4:25555"},
	}, got)

	out, err = run(t, cfg, "", "aliases", "target")
	require.NoError(t, err)
	assert.Contains(t, out, "micro")
	assert.NotContains(t, out, "status")

	_, err = run(t, cfg, "", "alias", "target", "micro")
	assert.EqualError(t, err, "usage: boshctl alias CATEGORY NAME VALUE")
}

func TestStatusCommand(t *testing.T) {
	cfg := configFile(t, `target: https://a:25555
target_name: prod
target_uuid: abc-123
status_timeout: 30
auth:
  https://a:25555:
    username: admin
    password: secret
deployment:
  https://a:25555: /a.yml
`)

	out, err := run(t, cfg, "", "status")
	require.NoError(t, err)
	for _, want := range []string{cfg, "https://a:25555", "prod", "abc-123", "admin", "/a.yml", "30s"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "secret")

	out, err = run(t, cfg, "", "status", "-o", "json")
	require.NoError(t, err)
	var rec statusRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, statusRecord{
		Config:        cfg,
		Target:        "https://a:25555",
		Name:          "prod",
		UUID:          "abc-123",
		User:          "admin",
		Deployment:    "/a.yml",
		StatusTimeout: 30,
	}, rec)
}

func TestStatusCommand_Empty(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bosh_config")
	out, err := run(t, cfg, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, cfg)
	assert.NotContains(t, out, "not logged in")
	_, err = os.Stat(cfg)
	assert.NoError(t, err)
}

func TestConfigGetCommand(t *testing.T) {
	cfg := configFile(t, `target: https://a:25555
status_timeout: 30
aliases:
  target:
    micro: https://192.168.50.4:25555
`)

	out, err := run(t, cfg, "", "config", "get", "aliases.target.micro")
	require.NoError(t, err)
	assert.Equal(t, "https://192.168.50.4:25555\n", out)

	out, err = run(t, cfg, "", "config", "get", "status_timeout")
	require.NoError(t, err)
	assert.Equal(t, "30\n", out)

	out, err = run(t, cfg, "", "config", "get", "aliases")
	require.NoError(t, err)
	assert.JSONEq(t, `{"target":{"micro":"https://192.168.50.4:25555"}}`, out)

	_, err = run(t, cfg, "", "config", "get", "nope")
	assert.EqualError(t, err, `no value at "nope"`)

	out, err = run(t, cfg, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfg+"\n", out)
}

func TestCompletionCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bosh_config")

	out, err := run(t, cfg, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _boshctl boshctl")

	out, err = run(t, cfg, "", "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "#compdef boshctl")

	t.Setenv("SHELL", "/bin/sh")
	_, err = run(t, cfg, "", "completion", "fish")
	assert.EqualError(t, err, "usage: boshctl completion [bash|zsh]")
}

func TestListingFilters(t *testing.T) {
	cfg := configFile(t, `target: https://a:25555
deployment:
  https://a:25555: /a.yml
  https://b:25555: /b.yml
aliases:
  target:
    micro: https://192.168.50.4:25555
  cmd:
    st: status
`)

	out, err := run(t, cfg, "", "deployment", "list", "-o", "json", "--filter", "target^https://b")
	require.NoError(t, err)
	assert.JSONEq(t, `{"https://b:25555":"/b.yml"}`, out)

	out, err = run(t, cfg, "", "aliases", "-o", "json", "-f", "category=cmd")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cmd":{"st":"status"}}`, out)

	out, err = run(t, cfg, "", "aliases", "-f", "alias=nope")
	require.NoError(t, err)
	assert.Empty(t, out)
}
