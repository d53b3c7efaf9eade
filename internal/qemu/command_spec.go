// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"strconv"

	"github.com/efirun/efirun/internal/sys"
)

const (
	machineTypeQ35  = "q35"
	machineTypeVirt = "virt"
)

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Path to the firmware code flash image (OVMF_CODE.fd). Attached as
	// the first read-only pflash drive.
	FirmwareCode string

	// Path to the firmware variable store flash image (OVMF_VARS.fd).
	// Attached as the second pflash drive, read-only unless
	// PersistentVars is set.
	FirmwareVars string

	// Directory exposed to the guest as a raw FAT drive. The UEFI
	// firmware scans it for the removable-media boot application.
	ESPDir string

	// PersistentVars attaches the variable store writable so the guest
	// can update boot variables across runs.
	PersistentVars bool

	// QEMU machine type to use. Depends on the QEMU binary used.
	Machine string

	// CPU type to use. Depends on machine type and QEMU binary used.
	CPU string

	// Number of CPUs for the guest.
	SMP uint64

	// Memory for the machine in MB.
	Memory uint64

	// Disable KVM support.
	NoKVM bool

	// Headless disables the graphical display and attaches the serial
	// console to stdio. Required for [Command.Run], which scans serial
	// output. [Command.Exec] leaves the display untouched, matching an
	// interactive developer run.
	Headless bool

	// BootMarker is a string the guest is expected to print on its
	// console once it booted successfully. Only used by [Command.Run].
	BootMarker string

	// ExtraArgs are extra arguments that are passed to the QEMU command.
	// They must not interfere with the essential arguments set by the
	// command itself or an error will be returned on [NewCommand].
	ExtraArgs []Argument
}

// AddDefaultsFor adds architecture specific default values to the spec if
// the fields are not set yet.
func (s *CommandSpec) AddDefaultsFor(arch sys.Arch) error {
	var (
		executable string
		machine    string
	)

	switch arch {
	case sys.AMD64:
		executable = "qemu-system-x86_64"
		machine = machineTypeQ35
	case sys.ARM64:
		executable = "qemu-system-aarch64"
		machine = machineTypeVirt
	default:
		return sys.ErrArchNotSupported
	}

	if s.Executable == "" {
		s.Executable = executable
	}

	if s.Machine == "" {
		s.Machine = machine
	}

	if !s.NoKVM {
		s.NoKVM = !arch.KVMAvailable()
	}

	return nil
}

// Validate checks for missing inputs and known incompatibilities.
func (s *CommandSpec) Validate() error {
	if s.Executable == "" {
		return &ArgumentError{"no QEMU executable given"}
	}

	if s.FirmwareCode == "" {
		return &ArgumentError{"no firmware code image given"}
	}

	if s.FirmwareVars == "" {
		return &ArgumentError{"no firmware variable store image given"}
	}

	if s.ESPDir == "" {
		return &ArgumentError{"no ESP staging directory given"}
	}

	if s.BootMarker != "" && !s.Headless {
		return &ArgumentError{"boot marker requires headless serial console"}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command.
//
// The three drives keep the firmware-mandated order: code flash, variable
// store flash, then the FAT boot drive.
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		PflashDrive(s.FirmwareCode, true).Arg(),
		PflashDrive(s.FirmwareVars, !s.PersistentVars).Arg(),
		FATDrive(s.ESPDir, false).Arg(),
	}

	if s.Machine != "" {
		args = append(args, UniqueArg("machine", s.Machine))
	}

	if s.CPU != "" {
		args = append(args, UniqueArg("cpu", s.CPU))
	}

	if s.SMP != 0 {
		args = append(args, UniqueArg("smp", strconv.FormatUint(s.SMP, 10)))
	}

	if s.Memory != 0 {
		args = append(args, UniqueArg("m", strconv.FormatUint(s.Memory, 10)))
	}

	if !s.NoKVM {
		args = append(args, UniqueArg("enable-kvm"))
	}

	if s.Headless {
		args = append(args,
			// Disable video output and QEMU monitor, route the serial
			// console to stdio instead.
			UniqueArg("display", "none"),
			UniqueArg("monitor", "none"),
			RepeatableArg("serial", "stdio"),
			// Guest must not reboot, a firmware boot loop would never
			// terminate the command.
			UniqueArg("no-reboot"),
		)
	}

	args = append(args, s.ExtraArgs...)

	return args
}
