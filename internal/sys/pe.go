// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package sys

import (
	"debug/pe"
	"fmt"
)

// UEFI applications are PE32+ images built for the EFI application
// subsystem. The constant is not exported by [debug/pe].
const imageSubsystemEFIApplication = 10

// MachineArch maps a PE machine type to the [Arch] it runs on.
func MachineArch(machine uint16) (Arch, error) {
	switch machine {
	case pe.IMAGE_FILE_MACHINE_AMD64:
		return AMD64, nil
	case pe.IMAGE_FILE_MACHINE_ARM64:
		return ARM64, nil
	default:
		return "", fmt.Errorf("%w: %#x", ErrMachineNotSupported, machine)
	}
}

// ValidatePE validates that the PE image at the given path is an EFI
// application built for the requested architecture.
func ValidatePE(path string, arch Arch) error {
	file, err := pe.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotPEFile, err)
	}
	defer file.Close()

	archActual, err := MachineArch(uint16(file.Machine))
	if err != nil {
		return err
	}

	if archActual != arch {
		return fmt.Errorf(
			"%w: built for %s, expected %s",
			ErrMachineNotSupported,
			archActual,
			arch,
		)
	}

	subsystem, err := peSubsystem(file)
	if err != nil {
		return err
	}

	if subsystem != imageSubsystemEFIApplication {
		return fmt.Errorf("%w: subsystem %d", ErrNotEFIImage, subsystem)
	}

	return nil
}

func peSubsystem(file *pe.File) (uint16, error) {
	switch hdr := file.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		return hdr.Subsystem, nil
	case *pe.OptionalHeader32:
		return hdr.Subsystem, nil
	default:
		return 0, ErrNotPEFile
	}
}
