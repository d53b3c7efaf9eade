// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

// Command is a single QEMU command that can be run or exec'd.
type Command struct {
	executable string
	args       []string
	bootMarker string
}

// NewCommand validates the given spec and compiles it into a [Command].
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, err
	}

	cmd := &Command{
		executable: spec.Executable,
		args:       args,
		bootMarker: spec.BootMarker,
	}

	return cmd, nil
}

// String implements [fmt.Stringer].
func (c *Command) String() string {
	return strings.Join(append([]string{c.executable}, c.args...), " ")
}

// Args returns the complete argument list of the command.
func (c *Command) Args() []string {
	return c.args
}

// Exec replaces the current process image with the QEMU command.
//
// On success it does not return. Execution is transferred, not spawned, so
// the caller's exit status becomes QEMU's exit status.
func (c *Command) Exec() error {
	path, err := exec.LookPath(c.executable)
	if err != nil {
		return fmt.Errorf("look up executable: %w", err)
	}

	argv := append([]string{path}, c.args...)

	err = unix.Exec(path, argv, os.Environ())

	// Exec only ever returns on failure.
	return &CommandError{Err: fmt.Errorf("exec: %w", err)}
}

// Run spawns the QEMU command and scans its serial console output.
//
// The guest's serial console lines are copied to stdout. If the spec defined
// a boot marker, the guest is terminated once the marker is seen and the run
// counts as successful. Firmware boot failures and guest CPU exceptions
// terminate the guest and are returned as [CommandError] with the Guest flag
// set.
func (c *Command) Run(ctx context.Context, stdout, stderr io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.executable, c.args...)
	cmd.Stderr = stderr

	out, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	watcher := &consoleWatcher{Marker: c.bootMarker}

	var watcherGroup errgroup.Group

	watcherGroup.Go(func() error {
		// Carriage returns sent by the firmware console are stripped by
		// [bufio.ScanLines].
		scanner := bufio.NewScanner(out)
		for scanner.Scan() {
			watcher.Parse(scanner.Bytes())

			err := writeLn(stdout, scanner.Bytes())
			if err != nil {
				return err
			}

			if watcher.Done() {
				cancel()
			}
		}

		return scanner.Err()
	})

	err = cmd.Start()
	if err != nil {
		return &CommandError{Err: fmt.Errorf("start: %w", err)}
	}

	scanErr := watcherGroup.Wait()
	waitErr := cmd.Wait()

	// The watcher terminating the guest is the only expected cancellation.
	// Anything else is a caller timeout or an interrupt.
	if ctx.Err() != nil && !watcher.Done() {
		return &CommandError{Err: ctx.Err()}
	}

	if guestErr := watcher.BootResult(); guestErr != nil {
		return guestErr
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			// The process was killed by us once the watcher was done, so
			// a non-zero status does not indicate a failure.
			if watcher.Done() {
				return nil
			}

			return &CommandError{
				ExitCode: exitErr.ExitCode(),
				Err:      ErrGuestNonZeroExitCode,
			}
		}

		return &CommandError{Err: fmt.Errorf("wait: %w", waitErr)}
	}

	return scanErr
}
