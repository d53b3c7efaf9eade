// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/efirun/efirun/internal/cargo"
	"github.com/efirun/efirun/internal/efirun"
	"github.com/efirun/efirun/internal/qemu"
)

// IO bundles the output streams of the program.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the program with the given arguments and returns the exit
// code the process should terminate with.
//
// Exit codes of failed cargo builds and of a spawned QEMU guest are passed
// through. All other errors map to exit code -1.
func Run(ctx context.Context, args []string, cfg IO) int {
	spec := efirun.NewSpec()

	cmd := newRootCommand(&spec, cfg)
	cmd.SetArgs(args)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(cfg.Stderr, "Error: %v\n", err)

	var buildErr *cargo.BuildError
	if errors.As(err, &buildErr) {
		return buildErr.ExitCode
	}

	var cmdErr *qemu.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode != 0 {
		return cmdErr.ExitCode
	}

	return -1
}
