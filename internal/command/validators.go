// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// ArgsValidator checks that cmd received between min and max positional
// arguments. A negative max means no upper bound.
func ArgsValidator(cmd *cli.Command, min, max int) error {
	n := cmd.Args().Len()
	if n < min || (max >= 0 && n > max) {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	return nil
}
