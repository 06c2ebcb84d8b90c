// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/meta"
)

var errEmptyUsername = errors.New("username cannot be empty")

// loginCommandAction stores credentials for the effective target. Missing
// arguments are prompted for; the password is read without echo on a
// terminal.
func loginCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 0, 2); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}
	target, err := RequireTarget(cmd, s)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	p := newPrompter(cmd)

	var username, password string
	if len(args) > 0 {
		username = args[0]
	} else if username, err = p.Ask("Your username: ", false); err != nil {
		return err
	}
	if username == "" {
		return errEmptyUsername
	}

	if len(args) > 1 {
		password = args[1]
	} else if password, err = p.Ask("Enter password: ", true); err != nil {
		return err
	}

	s.SetCredentials(target, username, password)
	if err := SaveStore(s); err != nil {
		return err
	}
	fmt.Fprintf(writer(cmd), "Logged in as '%s'\n", username)
	return nil
}

// logoutCommandAction clears the credentials of the effective target.
func logoutCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 0, 0); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}
	target, err := RequireTarget(cmd, s)
	if err != nil {
		return err
	}

	s.SetCredentials(target, "", "")
	if err := SaveStore(s); err != nil {
		return err
	}
	fmt.Fprintf(writer(cmd), "You are no longer logged in to '%s'\n", target)
	return nil
}

func loginCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "store credentials for the current target",
		UsageText: "boshctl login [USERNAME] [PASSWORD]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: loginCommandAction,
	}
}

func logoutCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "logout",
		Usage:     "forget credentials for the current target",
		UsageText: "boshctl logout",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: logoutCommandAction,
	}
}
