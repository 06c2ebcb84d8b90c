// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/config"
	"github.com/tfctl/boshctl/internal/meta"
	"github.com/tfctl/boshctl/internal/util"
)

// InitApp builds the command tree. The config path is resolved from args and
// the environment first so that flag value sources can read the config file.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	cfgPath := ResolveConfigPath(args)
	meta := meta.Meta{
		Args:        args,
		ConfigPath:  cfgPath,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "boshctl",
		Usage: "director client configuration",
		Flags: NewGlobalFlags(cfgPath),
		Metadata: map[string]any{
			"meta": meta,
		},
	}

	var r registry
	if err := r.register(
		aliasCommandBuilder(meta),
		aliasesCommandBuilder(meta),
		configCommandBuilder(meta),
		deploymentCommandBuilder(meta),
		loginCommandBuilder(meta),
		logoutCommandBuilder(meta),
		statusCommandBuilder(meta),
		targetCommandBuilder(meta),
		completionCommandBuilder(meta),
	); err != nil {
		return nil, err
	}
	app.Commands = r.commands

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// registry is the command table assembled once at startup. Names and aliases
// must be unique across all commands.
type registry struct {
	commands []*cli.Command
	names    map[string]struct{}
}

func (r *registry) register(cmds ...*cli.Command) error {
	if r.names == nil {
		r.names = map[string]struct{}{}
	}
	for _, cmd := range cmds {
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			if _, dup := r.names[name]; dup {
				return fmt.Errorf("duplicate command %q", name)
			}
			r.names[name] = struct{}{}
		}
		r.commands = append(r.commands, cmd)
	}
	return nil
}

// ResolveConfigPath finds the config file before flags are parsed: an explicit
// --config/-c argument, then BOSH_CONFIG, then config.DefaultFile. The result
// is absolute when it can be made so.
func ResolveConfigPath(args []string) string {
	path := configPathArg(args)
	if abs, err := util.AbsPath(path); err == nil {
		return abs
	}
	return path
}

func configPathArg(args []string) string {
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		for _, name := range []string{"--config", "-config", "-c"} {
			if a == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(a, name+"="); ok {
				return v
			}
		}
	}

	if env := os.Getenv("BOSH_CONFIG"); env != "" {
		return env
	}

	return config.DefaultFile
}
