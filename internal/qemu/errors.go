// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "errors"

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrGuestBootFailure is returned if the firmware fails to load the
	// staged boot application.
	ErrGuestBootFailure = errors.New("firmware failed to boot application")

	// ErrGuestException is returned if the guest hits a CPU exception
	// during boot.
	ErrGuestException = errors.New("guest raised an exception")

	// ErrGuestNoBootMarker is returned if the guest terminated without
	// printing the expected boot marker.
	ErrGuestNoBootMarker = errors.New("guest did not print boot marker")

	// ErrGuestNonZeroExitCode is returned if QEMU terminated with a
	// non-zero exit code.
	ErrGuestNonZeroExitCode = errors.New("exit code not 0")
)
