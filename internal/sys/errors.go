// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package sys

import "errors"

var (
	// ErrArchNotSupported is returned for architectures efirun cannot
	// stage or boot.
	ErrArchNotSupported = errors.New("architecture not supported")

	// ErrNotPEFile is returned if the file is not a valid PE image.
	ErrNotPEFile = errors.New("is not a PE file")

	// ErrMachineNotSupported is returned if a PE machine type does not map
	// to a supported architecture.
	ErrMachineNotSupported = errors.New("PE machine type not supported")

	// ErrNotEFIImage is returned if a PE image is not built for the UEFI
	// subsystem.
	ErrNotEFIImage = errors.New("not an EFI application image")

	// ErrEmptyFilePath is returned for empty path input.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrNotRegularFile is returned if a path does not point to a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")
)
