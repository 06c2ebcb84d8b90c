// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
)

// Meta contains runtime metadata shared by commands: the raw CLI arguments,
// the config file path resolved before flag parsing, the context, and the
// working directory captured at startup. The working directory is the key
// for directory-scoped settings in the config store.
type Meta struct {
	Args        []string
	ConfigPath  string
	Context     context.Context
	StartingDir string
}
