// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the boshctl command set. Each subcommand opens the
// config store, applies one change or query, and saves the store when it
// changed something.
package command
