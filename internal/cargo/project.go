// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cargo

import (
	"fmt"
	"os"
	"path/filepath"
)

const manifestName = "Cargo.toml"

// FindProjectRoot walks upwards from the given directory to the nearest
// directory containing a Cargo.toml.
//
// Resolving the root this way keeps runs independent of the exact
// invocation directory: any directory inside the project yields the same
// root, the way cargo itself resolves its manifest.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("ensure absolute path: %w", err)
	}

	for {
		manifest := filepath.Join(dir, manifestName)

		info, err := os.Stat(manifest)
		if err == nil && info.Mode().IsRegular() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectRoot
		}

		dir = parent
	}
}
