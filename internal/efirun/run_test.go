// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package efirun_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efirun/efirun/internal/cargo"
	"github.com/efirun/efirun/internal/efirun"
	"github.com/efirun/efirun/internal/sys"
)

const fakeMetadataJSON = `{
	"packages": [
		{
			"name": "osproj",
			"version": "0.1.0",
			"targets": [{"name": "osproj", "kind": ["bin"]}]
		}
	],
	"target_directory": "/nonexistent/target"
}`

// installFakeCargo puts a shell script named cargo first on PATH. It serves
// canned metadata and runs the given script for the build subcommand.
func installFakeCargo(t *testing.T, buildScript string) {
	t.Helper()

	content := `#!/bin/sh
case "$1" in
metadata)
	cat <<'EOF'
` + fakeMetadataJSON + `
EOF
	;;
build)
	` + buildScript + `
	;;
esac
`

	dir := t.TempDir()
	path := filepath.Join(dir, "cargo")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o700))

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func newProjectSpec(t *testing.T) efirun.Spec {
	t.Helper()

	root := t.TempDir()
	manifest := filepath.Join(root, "Cargo.toml")
	require.NoError(t, os.WriteFile(manifest, []byte("[package]\n"), 0o600))

	spec := efirun.NewSpec()
	spec.Project.Root = root
	spec.Project.Arch = sys.AMD64

	return spec
}

func TestStageAbortsOnBuildFailure(t *testing.T) {
	installFakeCargo(t, `echo "error: could not compile osproj" >&2; exit 101`)

	spec := newProjectSpec(t)

	var stdout, stderr bytes.Buffer

	_, err := efirun.Stage(context.Background(), &spec, &stdout, &stderr)

	var buildErr *cargo.BuildError

	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, 101, buildErr.ExitCode)

	// The failed build must not leave a staging tree behind.
	assert.NoDirExists(t, spec.ESPDir())
}

func TestStageAbortsOnMissingArtifact(t *testing.T) {
	installFakeCargo(t, `exit 0`)

	spec := newProjectSpec(t)
	spec.Project.NoBuild = true

	var stdout, stderr bytes.Buffer

	_, err := efirun.Stage(context.Background(), &spec, &stdout, &stderr)
	require.ErrorIs(t, err, cargo.ErrNoArtifact)

	assert.NoDirExists(t, spec.ESPDir())
}
