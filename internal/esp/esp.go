// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

// Package esp stages EFI executables into a directory tree laid out like an
// EFI System Partition. The tree is handed to QEMU as a directory backed
// FAT drive, so UEFI firmware finds the application at the
// removable-media default boot path.
package esp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/efirun/efirun/internal/sys"
)

// bootDir is the removable-media boot directory UEFI firmware scans,
// relative to the ESP root.
var bootDir = filepath.Join("EFI", "BOOT")

// BootFileName returns the architecture specific default boot file name
// mandated by the UEFI specification for removable media.
func BootFileName(arch sys.Arch) (string, error) {
	switch arch {
	case sys.AMD64:
		return "BOOTX64.EFI", nil
	case sys.ARM64:
		return "BOOTAA64.EFI", nil
	default:
		return "", sys.ErrArchNotSupported
	}
}

// BootFilePath returns the full path of the staged boot application for the
// given ESP root and architecture.
func BootFilePath(root string, arch sys.Arch) (string, error) {
	name, err := BootFileName(arch)
	if err != nil {
		return "", err
	}

	return filepath.Join(root, bootDir, name), nil
}

// Stage copies the EFI executable at artifact into the ESP tree below root.
//
// Directory creation is idempotent and the copy is atomic, so re-staging
// over a previous run never leaves a torn boot file behind. The staged file
// is byte-identical to the artifact.
func Stage(artifact, root string, arch sys.Arch) (string, error) {
	dst, err := BootFilePath(root, arch)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(filepath.Dir(dst), 0o755)
	if err != nil {
		return "", fmt.Errorf("create boot directory: %w", err)
	}

	content, err := os.ReadFile(artifact)
	if err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}

	err = renameio.WriteFile(dst, content, 0o644)
	if err != nil {
		return "", fmt.Errorf("write boot file: %w", err)
	}

	return dst, nil
}
