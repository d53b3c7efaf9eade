// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package efirun

import (
	"time"

	"github.com/efirun/efirun/internal/cargo"
	"github.com/efirun/efirun/internal/qemu"
	"github.com/efirun/efirun/internal/sys"
)

// Spec describes a single build-stage-boot cycle.
//
// It is split into parameters for the cargo build, the ESP staging tree and
// the QEMU launch.
type Spec struct {
	Project Project
	ESP     ESP
	Qemu    Qemu
}

// Project describes the UEFI application project to build.
type Project struct {
	// Root is the directory containing the Cargo.toml. Empty means
	// discovery by walking up from the working directory.
	Root string

	// Arch is the target architecture. Defaults to the host architecture.
	Arch sys.Arch

	// Profile selects the cargo build profile.
	Profile cargo.Profile

	// Features are additional cargo features to enable.
	Features []string

	// NoBuild skips the cargo build and stages the existing artifact.
	NoBuild bool
}

// ESP describes the EFI System Partition staging tree.
type ESP struct {
	// Dir is the staging root. Empty defaults to <project root>/esp.
	Dir string
}

// Qemu describes the QEMU launch.
type Qemu struct {
	Executable     string
	Machine        string
	CPU            string
	SMP            uint64
	Memory         uint64
	FirmwareCode   string
	FirmwareVars   string
	PersistentVars bool
	NoKVM          bool

	// Spawn runs QEMU as a child process with serial console scanning
	// instead of replacing the efirun process image.
	Spawn bool

	// BootMarker is the console string that marks a successful boot.
	// Implies Spawn.
	BootMarker string

	// Timeout limits the guest run time. Implies Spawn, only a child
	// process can be cut short.
	Timeout time.Duration

	ExtraArgs []qemu.Argument
}

// SpawnMode reports whether QEMU runs as a child process instead of
// replacing the efirun process image. Console watching and timeouts require
// a child process.
func (s *Spec) SpawnMode() bool {
	return s.Qemu.Spawn || s.Qemu.BootMarker != "" || s.Qemu.Timeout > 0
}

// NewSpec returns a [Spec] with defaults for the host architecture.
func NewSpec() Spec {
	return Spec{
		Project: Project{
			Arch:    sys.Native,
			Profile: cargo.ProfileDebug,
		},
	}
}
