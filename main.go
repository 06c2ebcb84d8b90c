// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/boshctl/internal/command"
	"github.com/tfctl/boshctl/internal/log"
	"github.com/tfctl/boshctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// handleVersion checks for --version/-v ahead of any subcommand and returns
// whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args[min(1, len(args)):] {
		if a == "--" || (len(a) > 0 && a[0] != '-') {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, stdout, stderr io.Writer) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain(args []string, stdout, stderr io.Writer) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, stdout) {
		return 0
	}

	args = handleNakedCommand(args)

	return initAndRunApp(args, stdout, stderr)
}
