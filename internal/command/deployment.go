// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/config"
	"github.com/tfctl/boshctl/internal/filters"
	"github.com/tfctl/boshctl/internal/meta"
	"github.com/tfctl/boshctl/internal/output"
	"github.com/tfctl/boshctl/internal/util"
)

// deploymentOwner is the key a deployment is recorded under: --name, then
// --target (which itself falls back to the config file), else "" to let the
// store use its current target.
func deploymentOwner(cmd *cli.Command) string {
	if name := cmd.String("name"); name != "" {
		return name
	}
	return flagString(cmd, "target")
}

// deploymentCommandAction shows the deployment of the current target or sets
// it to the manifest given as the only argument. Reading upgrades a legacy
// config file in place.
func deploymentCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 0, 1); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}
	w := writer(cmd)
	owner := deploymentOwner(cmd)

	if cmd.Args().Len() == 0 {
		d, err := s.Deployment(owner)
		if err != nil {
			return fmt.Errorf("failed to read deployment: %w", err)
		}
		if d == "" {
			fmt.Fprintln(w, "Deployment not set")
			return nil
		}
		fmt.Fprintf(w, "Current deployment is '%s'\n", d)
		return nil
	}

	manifest, err := util.AbsPath(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("invalid manifest path: %w", err)
	}
	if err := s.SetDeployment(manifest, owner); err != nil {
		return fmt.Errorf("failed to set deployment: %w", err)
	}
	if err := SaveStore(s); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deployment set to '%s'\n", manifest)
	return nil
}

// deploymentListCommandAction lists every recorded deployment. The entry of
// the effective target is marked with "*".
func deploymentListCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 0, 0); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}
	// Reading the current deployment first upgrades a legacy entry.
	if _, err := s.Deployment(deploymentOwner(cmd)); err != nil && !errors.Is(err, config.ErrMissingTarget) {
		return fmt.Errorf("failed to read deployment: %w", err)
	}

	current := EffectiveTarget(cmd, s)
	deployments := s.Deployments()

	headers := []string{"", "TARGET", "MANIFEST"}
	rows := make([][]string, 0, len(deployments))
	for name, manifest := range deployments {
		mark := ""
		if name == current {
			mark = "*"
		}
		rows = append(rows, []string{mark, name, manifest})
	}
	rows = filters.Apply(headers, rows, cmd.String("filter"))
	output.SortRows(rows, "1")

	records := make(map[string]string, len(rows))
	for _, row := range rows {
		records[row[1]] = row[2]
	}

	return output.Emit(writer(cmd), cmd.String("output"), output.Result{
		Headers: headers,
		Rows:    rows,
		Records: records,
	}, OutputOptions(cmd))
}

// deploymentRemoveCommandAction forgets the deployment recorded for NAME.
func deploymentRemoveCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 1, 1); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	name := cmd.Args().First()
	s.RemoveDeployment(name)
	if err := SaveStore(s); err != nil {
		return err
	}
	fmt.Fprintf(writer(cmd), "Deployment for '%s' removed\n", name)
	return nil
}

func deploymentCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "deployment",
		Usage:     "show or set the deployment manifest for the current target",
		UsageText: "boshctl deployment [MANIFEST] [--name NAME]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "record the deployment under NAME instead of the target",
			},
		},
		Action: deploymentCommandAction,
		Commands: []*cli.Command{
			{
				Name:      "list",
				Aliases:   []string{"ls"},
				Usage:     "list recorded deployments",
				UsageText: "boshctl deployment list",
				Flags:     append(NewOutputFlags(), NewFilterFlag()),
				Action:    deploymentListCommandAction,
			},
			{
				Name:      "rm",
				Usage:     "forget the deployment recorded for NAME",
				UsageText: "boshctl deployment rm NAME",
				Action:    deploymentRemoveCommandAction,
			},
		},
	}
}
