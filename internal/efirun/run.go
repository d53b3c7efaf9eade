// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package efirun

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/efirun/efirun/internal/cargo"
	"github.com/efirun/efirun/internal/esp"
	"github.com/efirun/efirun/internal/firmware"
	"github.com/efirun/efirun/internal/qemu"
	"github.com/efirun/efirun/internal/sys"
)

// ResolveProjectRoot fills in the project root, discovering it from the
// given working directory if it was not set explicitly.
func (s *Spec) ResolveProjectRoot(workDir string) error {
	if s.Project.Root != "" {
		root, err := sys.AbsoluteFilePath(s.Project.Root)
		if err != nil {
			return err
		}

		s.Project.Root = root.String()

		return nil
	}

	root, err := cargo.FindProjectRoot(workDir)
	if err != nil {
		return err
	}

	s.Project.Root = root

	return nil
}

// ESPDir returns the staging tree root, defaulting to "esp" below the
// project root.
func (s *Spec) ESPDir() string {
	if s.ESP.Dir != "" {
		return s.ESP.Dir
	}

	return filepath.Join(s.Project.Root, "esp")
}

// Build compiles the EFI application and returns the artifact path.
//
// The artifact is validated to be a PE32+ EFI application for the requested
// architecture before it is handed to staging. With [Project.NoBuild] set,
// the build step is skipped and the existing artifact is used.
func Build(ctx context.Context, spec *Spec, stdout, stderr io.Writer) (string, error) {
	metadata, err := cargo.ReadMetadata(ctx, spec.Project.Root)
	if err != nil {
		return "", fmt.Errorf("read project metadata: %w", err)
	}

	buildSpec := cargo.BuildSpec{
		ProjectRoot: spec.Project.Root,
		Arch:        spec.Project.Arch,
		Profile:     spec.Project.Profile,
		Features:    spec.Project.Features,
	}

	if !spec.Project.NoBuild {
		err = cargo.Build(ctx, buildSpec, stdout, stderr)
		if err != nil {
			return "", fmt.Errorf("build: %w", err)
		}
	}

	artifact, err := buildSpec.ArtifactPath(
		metadata.TargetDirectory,
		metadata.BinaryName(),
	)
	if err != nil {
		return "", err
	}

	err = sys.FilePath(artifact).Check()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", cargo.ErrNoArtifact, artifact, err)
	}

	err = sys.ValidatePE(artifact, spec.Project.Arch)
	if err != nil {
		return "", fmt.Errorf("check artifact: %w", err)
	}

	slog.Debug("Built EFI application",
		slog.String("artifact", artifact))

	return artifact, nil
}

// Stage builds the EFI application and stages it into the ESP tree. It
// returns the path of the staged boot file.
func Stage(ctx context.Context, spec *Spec, stdout, stderr io.Writer) (string, error) {
	artifact, err := Build(ctx, spec, stdout, stderr)
	if err != nil {
		return "", err
	}

	staged, err := esp.Stage(artifact, spec.ESPDir(), spec.Project.Arch)
	if err != nil {
		return "", fmt.Errorf("stage: %w", err)
	}

	slog.Debug("Staged boot application",
		slog.String("path", staged))

	return staged, nil
}

// Run builds, stages and boots the EFI application under QEMU.
//
// The default launch replaces the current process image with QEMU and does
// not return on success. With [Qemu.Spawn] set, QEMU runs as a child
// process and its serial console is scanned until the boot marker is seen
// or the guest fails.
func Run(ctx context.Context, spec *Spec, stdout, stderr io.Writer) error {
	_, err := Stage(ctx, spec, stdout, stderr)
	if err != nil {
		return err
	}

	images, err := firmware.Resolve(
		spec.Qemu.FirmwareCode,
		spec.Qemu.FirmwareVars,
		spec.Project.Root,
		spec.Project.Arch,
	)
	if err != nil {
		return fmt.Errorf("firmware: %w", err)
	}

	cmd, err := newQemuCommand(spec, images)
	if err != nil {
		return err
	}

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	if spec.SpawnMode() {
		if spec.Qemu.Timeout > 0 {
			var cancel context.CancelFunc

			ctx, cancel = context.WithTimeout(ctx, spec.Qemu.Timeout)
			defer cancel()
		}

		err = cmd.Run(ctx, stdout, stderr)
		if err != nil {
			return fmt.Errorf("qemu run: %w", err)
		}

		return nil
	}

	// Process replacement. Only ever returns on failure.
	return cmd.Exec()
}

// newQemuCommand compiles the QEMU command for the given spec and resolved
// firmware images.
func newQemuCommand(spec *Spec, images firmware.Images) (*qemu.Command, error) {
	cmdSpec := qemu.CommandSpec{
		Executable:     spec.Qemu.Executable,
		FirmwareCode:   images.Code,
		FirmwareVars:   images.Vars,
		ESPDir:         spec.ESPDir(),
		PersistentVars: spec.Qemu.PersistentVars,
		Machine:        spec.Qemu.Machine,
		CPU:            spec.Qemu.CPU,
		SMP:            spec.Qemu.SMP,
		Memory:         spec.Qemu.Memory,
		NoKVM:          spec.Qemu.NoKVM,
		Headless:       spec.SpawnMode(),
		BootMarker:     spec.Qemu.BootMarker,
		ExtraArgs:      spec.Qemu.ExtraArgs,
	}

	err := cmdSpec.AddDefaultsFor(spec.Project.Arch)
	if err != nil {
		return nil, fmt.Errorf("qemu defaults: %w", err)
	}

	cmd, err := qemu.NewCommand(cmdSpec)
	if err != nil {
		return nil, fmt.Errorf("build command: %w", err)
	}

	return cmd, nil
}
