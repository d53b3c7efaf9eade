// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cargo

import "errors"

var (
	// ErrNoProjectRoot is returned if no Cargo.toml is found in the
	// working directory or any of its parents.
	ErrNoProjectRoot = errors.New("no Cargo.toml found")

	// ErrNoPackage is returned if the project metadata does not contain
	// any package.
	ErrNoPackage = errors.New("project metadata contains no package")

	// ErrNoArtifact is returned if the expected build artifact does not
	// exist after a successful build.
	ErrNoArtifact = errors.New("build artifact not found")

	// ErrProfileInvalid is returned for unknown build profiles.
	ErrProfileInvalid = errors.New("unknown build profile")
)

// BuildError is returned if the cargo command terminated with a non-zero
// exit code. The exit code is propagated so callers can surface it
// unchanged.
type BuildError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *BuildError) Error() string {
	return "cargo: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*BuildError) Is(other error) bool {
	_, ok := other.(*BuildError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *BuildError) Unwrap() error {
	return e.Err
}
