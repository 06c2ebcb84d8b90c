// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags shared by every subcommand. cfgPath is the
// config file resolved before parsing; it is both the default of --config and
// the file --target falls back to.
func NewGlobalFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "configuration file",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("BOSH_CONFIG"),
			),
			Value: cfgPath,
		},
		NewTargetFlag(cfgPath),
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "boshctl version info",
			HideDefault: true,
		},
	}
}

// NewTargetFlag constructs the --target flag. Its value comes from the flag,
// then BOSH_TARGET, then the "target" key of the config file at cfgPath.
func NewTargetFlag(cfgPath string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "target",
		Aliases: []string{"t"},
		Usage:   "director to address instead of the configured target",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BOSH_TARGET"),
		),
	}

	if cfgPath != "" {
		flag = ValueChainFlagFromConfigFile(cfgPath, flag)
	}
	return flag
}

// ValueChainFlagFromConfigFile appends the config file key matching the flag
// name to the flag's Sources chain.
func ValueChainFlagFromConfigFile(path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}

// NewFilterFlag constructs the --filter flag of listing commands.
func NewFilterFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "comma separated filters to apply, e.g. category=target",
	}
}

// NewOutputFlags returns the flags of listing commands.
func NewOutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "color",
			Usage: "enable colored text output",
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:  "titles",
			Usage: "show titles with text output",
			Value: false,
		},
	}
}
