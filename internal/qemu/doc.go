// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

// Package qemu composes and runs QEMU system commands for booting UEFI
// applications. It expects the required qemu-system binary to be present on
// the host.
//
// The guest is booted from OVMF firmware images attached as raw pflash
// drives and an EFI System Partition directory attached as a virtual FAT
// drive. There are two launch modes: [Command.Exec] replaces the current
// process image with QEMU, and [Command.Run] spawns QEMU as a child process
// with its serial console scanned for boot progress.
package qemu
