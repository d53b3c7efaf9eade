// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cargo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/efirun/efirun/internal/sys"
)

// BuildSpec defines a single cargo build invocation.
type BuildSpec struct {
	// ProjectRoot is the directory containing the Cargo.toml.
	ProjectRoot string

	// Arch selects the UEFI cross target triple.
	Arch sys.Arch

	// Profile selects debug or release output.
	Profile Profile

	// Features are additional cargo features to enable.
	Features []string
}

// Args returns the cargo argument list for the build.
func (s *BuildSpec) Args() ([]string, error) {
	triple, err := TargetTriple(s.Arch)
	if err != nil {
		return nil, err
	}

	args := []string{"build", "--target", triple}

	if s.Profile == ProfileRelease {
		args = append(args, "--release")
	}

	for _, feature := range s.Features {
		args = append(args, "--features", feature)
	}

	return args, nil
}

// ArtifactPath returns the path the built EFI executable is expected at,
// following cargo's target-triple output convention.
func (s *BuildSpec) ArtifactPath(targetDir, binaryName string) (string, error) {
	triple, err := TargetTriple(s.Arch)
	if err != nil {
		return "", err
	}

	profile := s.Profile
	if profile == "" {
		profile = ProfileDebug
	}

	path := filepath.Join(
		targetDir,
		triple,
		profile.String(),
		binaryName+".efi",
	)

	return path, nil
}

// Build runs the cargo build in the project root. Build output is passed
// through to the given writers. A non-zero cargo exit code is propagated as
// [BuildError].
func Build(ctx context.Context, spec BuildSpec, stdout, stderr io.Writer) error {
	args, err := spec.Args()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = spec.ProjectRoot
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	if err != nil {
		return wrapCargoError(err, "")
	}

	return nil
}

func wrapCargoError(err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if stderr != "" {
			err = fmt.Errorf("%w: %s", err, stderr)
		}

		return &BuildError{
			Err:      err,
			ExitCode: exitErr.ExitCode(),
		}
	}

	return fmt.Errorf("run cargo: %w", err)
}
