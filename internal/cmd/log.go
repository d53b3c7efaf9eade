// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"log/slog"
)

// setupLogging routes diagnostics to the given writer. The default level
// only lets warnings and errors through, debug mode opens it up.
func setupLogging(out io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
