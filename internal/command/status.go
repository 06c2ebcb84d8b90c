// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/config"
	"github.com/tfctl/boshctl/internal/meta"
	"github.com/tfctl/boshctl/internal/output"
)

// statusRecord is the structured form of the status listing.
type statusRecord struct {
	Config        string `json:"config" yaml:"config"`
	Target        string `json:"target" yaml:"target"`
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`
	UUID          string `json:"uuid" yaml:"uuid"`
	User          string `json:"user" yaml:"user"`
	Deployment    string `json:"deployment" yaml:"deployment"`
	Release       string `json:"release" yaml:"release"`
	StatusTimeout int    `json:"status_timeout,omitempty" yaml:"status_timeout,omitempty"`
}

// describeFile summarizes the config file as "<path> (<size>, modified <age>)".
func describeFile(s *config.Store) string {
	info, err := s.Stat()
	if err != nil {
		return s.Filename()
	}
	return fmt.Sprintf("%s (%s, modified %s)",
		s.Filename(), humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
}

func statusCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 0, 0); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	target := EffectiveTarget(cmd, s)
	rec := statusRecord{
		Config:  s.Filename(),
		Target:  target,
		Version: s.TargetVersion(),
		UUID:    s.TargetUUID(),
		Release: s.Release(),
	}
	if target == s.Target() {
		rec.Name = s.TargetName()
	}
	if target != "" {
		rec.User = s.Username(target)
		if rec.Deployment, err = s.Deployment(target); err != nil {
			return fmt.Errorf("failed to read deployment: %w", err)
		}
	}
	timeout := "-"
	if n, ok := s.StatusTimeout(); ok {
		rec.StatusTimeout = n
		timeout = strconv.Itoa(n) + "s"
	}

	user := rec.User
	if target != "" && user == "" {
		user = "not logged in"
	}

	opts := OutputOptions(cmd)
	rows := [][]string{
		{output.Label("Config", opts), describeFile(s)},
		{output.Label("Target", opts), output.Dash(rec.Target)},
		{output.Label("Name", opts), output.Dash(rec.Name)},
		{output.Label("Version", opts), output.Dash(rec.Version)},
		{output.Label("UUID", opts), output.Dash(rec.UUID)},
		{output.Label("User", opts), output.Dash(user)},
		{output.Label("Deployment", opts), output.Dash(rec.Deployment)},
		{output.Label("Release", opts), output.Dash(rec.Release)},
		{output.Label("Timeout", opts), timeout},
	}

	return output.Emit(writer(cmd), cmd.String("output"), output.Result{
		Headers: []string{"FIELD", "VALUE"},
		Rows:    rows,
		Records: rec,
	}, opts)
}

func statusCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "show the current configuration",
		UsageText: "boshctl status",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewOutputFlags(),
		Action: statusCommandAction,
	}
}
