// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

// Package cargo shells out to the cargo build tool to compile the EFI
// application and to query project metadata. It requires cargo with the
// UEFI cross targets installed (rustup target add x86_64-unknown-uefi).
package cargo
