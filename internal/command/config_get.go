// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/meta"
	"github.com/tfctl/boshctl/internal/output"
)

// configGetCommandAction prints the value at a gjson path of the config
// document. Scalars are printed bare, anything else in the --output format.
func configGetCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 1, 1); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	path := cmd.Args().First()
	v, ok := s.Lookup(path)
	if !ok {
		return fmt.Errorf("no value at %q", path)
	}

	w := writer(cmd)
	switch t := v.(type) {
	case nil:
		fmt.Fprintln(w, "null")
		return nil
	case string, bool, float64:
		fmt.Fprintln(w, t)
		return nil
	}

	if cmd.String("output") == "yaml" {
		return output.YAML(w, v)
	}
	return output.JSON(w, v)
}

// configPathCommandAction prints the absolute path of the config file.
func configPathCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(writer(cmd), s.Filename())
	return nil
}

func configCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "inspect the configuration file",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print the value at PATH (gjson syntax)",
				UsageText: "boshctl config get PATH",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output format for non-scalar values",
						Value:   "json",
						Validator: func(value string) error {
							return FlagValidators(value, OutputValidator)
						},
					},
				},
				Action: configGetCommandAction,
			},
			{
				Name:      "path",
				Usage:     "print the configuration file path",
				UsageText: "boshctl config path",
				Action:    configPathCommandAction,
			},
		},
	}
}
