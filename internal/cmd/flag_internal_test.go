// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efirun/efirun/internal/cargo"
	"github.com/efirun/efirun/internal/sys"
)

func TestTextValue(t *testing.T) {
	t.Run("arch", func(t *testing.T) {
		arch := sys.Native
		value := newTextValue(&arch, "arch")

		assert.Equal(t, "arch", value.Type())

		require.NoError(t, value.Set("arm64"))
		assert.Equal(t, sys.ARM64, arch)
		assert.Equal(t, "arm64", value.String())

		require.ErrorIs(t, value.Set("sparc"), sys.ErrArchNotSupported)
	})

	t.Run("file path", func(t *testing.T) {
		var path sys.FilePath

		value := newTextValue(&path, "path")

		require.NoError(t, value.Set("some/file"))
		assert.True(t, filepath.IsAbs(path.String()))

		require.ErrorIs(t, value.Set(""), sys.ErrEmptyFilePath)
	})

	t.Run("profile", func(t *testing.T) {
		profile := cargo.ProfileDebug
		value := newTextValue(&profile, "profile")

		require.NoError(t, value.Set("release"))
		assert.Equal(t, cargo.ProfileRelease, profile)

		require.ErrorIs(t, value.Set("bench"), cargo.ErrProfileInvalid)
	})
}
