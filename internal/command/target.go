// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/log"
	"github.com/tfctl/boshctl/internal/meta"
)

// targetAliasCategory is the alias category consulted when a target is set.
const targetAliasCategory = "target"

// targetCommandAction shows the current target or, given a URL (or a target
// alias), makes it current. Switching to a different target forgets the
// name, version and UUID recorded for the previous one.
func targetCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 0, 1); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}
	w := writer(cmd)

	if cmd.Args().Len() == 0 {
		current := s.Target()
		switch {
		case current == "":
			fmt.Fprintln(w, "Target not set")
		case s.TargetName() != "":
			fmt.Fprintf(w, "Current target is %s (%s)\n", current, s.TargetName())
		default:
			fmt.Fprintf(w, "Current target is %s\n", current)
		}
		return nil
	}

	target := cmd.Args().First()
	if resolved, ok := s.ResolveAlias(targetAliasCategory, target); ok {
		log.Debugf("target alias resolved: alias=%s target=%s", target, resolved)
		target = resolved
	}

	if target != s.Target() {
		s.SetTargetName("")
		s.SetTargetVersion("")
		s.SetTargetUUID("")
	}
	s.SetTarget(target)
	if cmd.IsSet("name") {
		s.SetTargetName(cmd.String("name"))
	}

	if err := SaveStore(s); err != nil {
		return err
	}
	fmt.Fprintf(w, "Target set to %s\n", target)
	return nil
}

func targetCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "target",
		Usage:     "show or set the current director",
		UsageText: "boshctl target [URL|ALIAS] [--name NAME]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "display name for the target",
			},
		},
		Action: targetCommandAction,
	}
}
