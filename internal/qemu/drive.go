// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "strings"

// Drive describes a single QEMU -drive argument.
type Drive struct {
	// File is the backing store. For [FATDrive]s it carries the "fat:"
	// prefixed directory path.
	File string

	// Format of the backing store. Raw for firmware flash images and
	// directory backed FAT drives.
	Format string

	// Interface the drive is attached to, e.g. "pflash" for firmware
	// images. Empty means QEMU's default interface.
	Interface string

	// ReadOnly marks the drive read-only.
	ReadOnly bool
}

// PflashDrive returns a raw parallel NOR flash [Drive] for the given
// firmware image. OVMF firmware code and variable store images are attached
// this way.
func PflashDrive(file string, readOnly bool) Drive {
	return Drive{
		File:      file,
		Format:    "raw",
		Interface: "pflash",
		ReadOnly:  readOnly,
	}
}

// FATDrive returns a [Drive] backed by the given directory, exposed to the
// guest as a virtual FAT file system. The directory tree is what the UEFI
// firmware scans for boot applications.
func FATDrive(dir string, readOnly bool) Drive {
	file := "fat:rw:" + dir
	if readOnly {
		file = "fat:" + dir
	}

	return Drive{
		File:     file,
		Format:   "raw",
		ReadOnly: readOnly,
	}
}

// Arg renders the [Drive] as a repeatable -drive [Argument].
func (d Drive) Arg() Argument {
	opts := make([]string, 0, 4)

	if d.Interface != "" {
		opts = append(opts, "if="+d.Interface)
	}

	if d.Format != "" {
		opts = append(opts, "format="+d.Format)
	}

	if d.ReadOnly {
		opts = append(opts, "readonly=on")
	}

	opts = append(opts, "file="+d.File)

	return RepeatableArg("drive", strings.Join(opts, ","))
}
