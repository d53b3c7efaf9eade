// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/efirun/efirun/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGABRT,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	)
	defer cancel()

	exitCode := cmd.Run(ctx, os.Args[1:], cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	cancel()
	os.Exit(exitCode)
}
