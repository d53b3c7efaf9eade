// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

// Package efirun provides the main utilities for the build-stage-boot loop
// of a UEFI application project. The application is compiled with cargo for
// a freestanding UEFI target, staged into an EFI System Partition directory
// tree at the removable-media default boot path, and booted under QEMU with
// OVMF firmware images attached as pflash drives.
//
// The default launch replaces the efirun process image with QEMU, so the
// caller owns the emulator directly and inherits its exit status. The spawn
// launch keeps efirun in the foreground and scans the guest's serial
// console for boot progress.
package efirun
