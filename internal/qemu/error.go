// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// CommandError wraps any error occurred during Command execution.
type CommandError struct {
	Err      error
	Guest    bool
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	scope := "host"
	if e.Guest {
		scope = "guest"
	}

	return scope + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
