// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

// Package cmd implements the efirun command line interface.
package cmd
