// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/filters"
	"github.com/tfctl/boshctl/internal/meta"
	"github.com/tfctl/boshctl/internal/output"
)

// aliasCommandAction records VALUE as alias NAME in CATEGORY.
func aliasCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 3, 3); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	category, name, value := args[0], args[1], args[2]
	s.SetAlias(category, name, value)
	if err := SaveStore(s); err != nil {
		return err
	}
	fmt.Fprintf(writer(cmd), "Alias '%s' created for %s '%s'\n", name, category, value)
	return nil
}

// aliasesCommandAction lists aliases, optionally limited to one category.
func aliasesCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 0, 1); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	categories := s.Categories()
	if cmd.Args().Len() == 1 {
		categories = []string{cmd.Args().First()}
	}

	headers := []string{"CATEGORY", "ALIAS", "VALUE"}
	var rows [][]string
	for _, category := range categories {
		group, ok := s.Aliases(category)
		if !ok {
			continue
		}
		for name, value := range group {
			rows = append(rows, []string{category, name, value})
		}
	}
	rows = filters.Apply(headers, rows, cmd.String("filter"))
	// By category, then alias name.
	output.SortRows(rows, "1")
	output.SortRows(rows, "0")

	records := map[string]map[string]string{}
	for _, row := range rows {
		if records[row[0]] == nil {
			records[row[0]] = map[string]string{}
		}
		records[row[0]][row[1]] = row[2]
		row[2] = output.Dash(row[2])
	}

	return output.Emit(writer(cmd), cmd.String("output"), output.Result{
		Headers: headers,
		Rows:    rows,
		Records: records,
	}, OutputOptions(cmd))
}

func aliasCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "alias",
		Usage:     "create an alias",
		UsageText: "boshctl alias CATEGORY NAME VALUE",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: aliasCommandAction,
	}
}

func aliasesCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "aliases",
		Usage:     "list aliases",
		UsageText: "boshctl aliases [CATEGORY]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewOutputFlags(), NewFilterFlag()),
		Action: aliasesCommandAction,
	}
}
