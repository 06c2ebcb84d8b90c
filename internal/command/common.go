// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/boshctl/internal/config"
	"github.com/tfctl/boshctl/internal/log"
	"github.com/tfctl/boshctl/internal/meta"
	"github.com/tfctl/boshctl/internal/output"
)

// GetMeta returns the meta.Meta stored in the root command's Metadata. If
// missing or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	for _, c := range []*cli.Command{cmd, cmd.Root()} {
		if c == nil || c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

// OpenStore loads the config store named by --config, scoped to the working
// directory captured at startup.
func OpenStore(cmd *cli.Command) (*config.Store, error) {
	m := GetMeta(cmd)
	path := cmd.String("config")
	if path == "" {
		path = m.ConfigPath
	}

	s, err := config.New(path, m.StartingDir)
	if err != nil {
		return nil, err
	}
	log.Debugf("store opened: path=%s workdir=%s", s.Filename(), s.WorkDir())
	return s, nil
}

// SaveStore persists s and logs the failure before returning it.
func SaveStore(s *config.Store) error {
	if err := s.Save(); err != nil {
		log.WithError(err).Errorf("failed to save %s", s.Filename())
		return err
	}
	return nil
}

// EffectiveTarget is the --target value, or the store's target when the flag
// resolved to nothing.
func EffectiveTarget(cmd *cli.Command, s *config.Store) string {
	if t := flagString(cmd, "target"); t != "" {
		return t
	}
	return s.Target()
}

// flagString returns the string flag value. A null key in the config file
// source renders as "<nil>" and is reported as unset.
func flagString(cmd *cli.Command, name string) string {
	v := cmd.String(name)
	if v == "<nil>" {
		return ""
	}
	return v
}

// RequireTarget returns the effective target or config.ErrMissingTarget.
func RequireTarget(cmd *cli.Command, s *config.Store) (string, error) {
	t := EffectiveTarget(cmd, s)
	if t == "" {
		return "", fmt.Errorf("%w, use 'boshctl target URL' first", config.ErrMissingTarget)
	}
	return t, nil
}

// OutputOptions collects the text rendering flags of cmd.
func OutputOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	}
}

func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func reader(cmd *cli.Command) io.Reader {
	if root := cmd.Root(); root != nil && root.Reader != nil {
		return root.Reader
	}
	return os.Stdin
}

// prompter asks for input on the command's writer and reads answers line by
// line from its reader.
type prompter struct {
	w   io.Writer
	in  io.Reader
	buf *bufio.Reader
}

func newPrompter(cmd *cli.Command) *prompter {
	in := reader(cmd)
	return &prompter{w: writer(cmd), in: in, buf: bufio.NewReader(in)}
}

// Ask writes label and reads one line. When secret is set and input is a
// terminal, the answer is not echoed.
func (p *prompter) Ask(label string, secret bool) (string, error) {
	fmt.Fprint(p.w, label)

	if f, ok := p.in.(*os.File); ok && secret && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.w)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(b), nil
	}

	line, err := p.buf.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
