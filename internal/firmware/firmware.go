// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

// Package firmware locates OVMF firmware flash images on the host. The
// images are attached to QEMU as raw pflash drives: one for the firmware
// code, one for the variable store.
package firmware

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/efirun/efirun/internal/sys"
)

// Images holds the resolved firmware flash image paths.
type Images struct {
	// Code is the read-only firmware code image (OVMF_CODE.fd).
	Code string

	// Vars is the variable store image (OVMF_VARS.fd).
	Vars string
}

// Image file names looked up in the project root, matching the classic
// developer setup of dropping both images next to the source tree.
const (
	codeFileName = "OVMF_CODE.fd"
	varsFileName = "OVMF_VARS.fd"
)

// systemSearchDirs lists well-known distro locations of edk2 OVMF builds
// per architecture.
func systemSearchDirs(arch sys.Arch) []string {
	switch arch {
	case sys.AMD64:
		return []string{
			"/usr/share/OVMF",
			"/usr/share/edk2/x64",
			"/usr/share/edk2/ovmf",
			"/usr/share/qemu",
		}
	case sys.ARM64:
		return []string{
			"/usr/share/AAVMF",
			"/usr/share/edk2/aarch64",
		}
	default:
		return nil
	}
}

// Resolve locates the firmware images for the given architecture.
//
// Explicitly given paths win and are only checked for existence. If only one
// image is given, its sibling is expected in the same directory. Otherwise
// the project root is searched first, then the well-known system locations.
// Both images must come from the same directory, mixing builds from
// different edk2 versions does not boot reliably.
func Resolve(code, vars, projectRoot string, arch sys.Arch) (Images, error) {
	if code != "" || vars != "" {
		if code == "" {
			code = filepath.Join(filepath.Dir(vars), codeFileName)
		}

		if vars == "" {
			vars = filepath.Join(filepath.Dir(code), varsFileName)
		}

		images := Images{Code: code, Vars: vars}

		return images, images.Check()
	}

	searchDirs := append(
		[]string{projectRoot},
		systemSearchDirs(arch)...,
	)

	for _, dir := range searchDirs {
		images := Images{
			Code: filepath.Join(dir, codeFileName),
			Vars: filepath.Join(dir, varsFileName),
		}

		if images.Check() == nil {
			slog.Debug("Resolved firmware images",
				slog.String("dir", dir))

			return images, nil
		}
	}

	return Images{}, ErrNotFound
}

// Check returns an error if either image is missing or not a regular file.
func (i Images) Check() error {
	for _, path := range []string{i.Code, i.Vars} {
		stat, err := os.Stat(path)
		if err != nil {
			return &ImageError{Path: path, Err: err}
		}

		if !stat.Mode().IsRegular() {
			return &ImageError{Path: path, Err: sys.ErrNotRegularFile}
		}
	}

	return nil
}
