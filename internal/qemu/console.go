// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
)

var (
	bootFailureRE = regexp.MustCompile(
		`^BdsDxe: (failed to load Boot|No bootable option)`,
	)
	exceptionRE = regexp.MustCompile(
		`(^!{4} [A-Z0-9]+ Exception Type|Synchronous Exception at 0x)`,
	)
)

// consoleWatcher scans the guest's serial console output line by line.
//
// It detects firmware boot failures, CPU exceptions and, most importantly,
// the boot marker the guest prints once it came up successfully. After the
// run, the result can be retrieved by calling [consoleWatcher.BootResult].
type consoleWatcher struct {
	// Marker is the string the guest prints on successful boot. Empty
	// disables marker detection.
	Marker string

	markerFound bool
	err         error
}

// Parse consumes a single console line.
func (w *consoleWatcher) Parse(data []byte) {
	// Keep scanning after a match has been found, so following lines
	// still surface in case of firmware error messages.
	switch {
	case bootFailureRE.Match(data):
		w.err = ErrGuestBootFailure
	case exceptionRE.Match(data):
		w.err = ErrGuestException
	case w.Marker != "" && !w.markerFound:
		w.markerFound = bytes.Contains(data, []byte(w.Marker))
	}
}

// Done reports whether the watcher has seen everything it was looking for
// and the guest can be terminated.
func (w *consoleWatcher) Done() bool {
	return w.markerFound || w.err != nil
}

// BootResult returns nil if the guest booted successfully.
//
// Otherwise, it returns a [CommandError] with the guest flag set.
func (w *consoleWatcher) BootResult() error {
	err := w.err

	if err == nil {
		if w.Marker == "" || w.markerFound {
			return nil
		}

		err = ErrGuestNoBootMarker
	}

	return &CommandError{
		Guest: true,
		Err:   err,
	}
}

func writeLn(dst io.Writer, data []byte) error {
	// If the caller did not pass any output writer, discard it.
	if dst == nil {
		return nil
	}

	_, err := dst.Write(data)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	_, err = dst.Write([]byte("\n"))
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}
