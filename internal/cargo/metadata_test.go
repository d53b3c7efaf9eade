// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cargo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efirun/efirun/internal/cargo"
)

const metadataJSON = `{
	"packages": [
		{
			"name": "osproj",
			"version": "0.1.0",
			"targets": [
				{
					"name": "osproj",
					"kind": ["bin"]
				}
			]
		}
	],
	"target_directory": "/home/dev/osproj/target"
}`

func TestDecodeMetadata(t *testing.T) {
	t.Run("decodes", func(t *testing.T) {
		metadata, err := cargo.DecodeMetadata([]byte(metadataJSON))
		require.NoError(t, err)

		assert.Equal(t, "/home/dev/osproj/target", metadata.TargetDirectory)
		assert.Equal(t, "osproj", metadata.BinaryName())
	})

	t.Run("no packages", func(t *testing.T) {
		_, err := cargo.DecodeMetadata([]byte(`{"packages": []}`))
		require.ErrorIs(t, err, cargo.ErrNoPackage)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := cargo.DecodeMetadata([]byte(`{`))
		require.Error(t, err)
	})
}

func TestMetadataBinaryName(t *testing.T) {
	t.Run("lib only package falls back to package name", func(t *testing.T) {
		metadata, err := cargo.DecodeMetadata([]byte(`{
			"packages": [
				{
					"name": "osproj",
					"version": "0.1.0",
					"targets": [
						{"name": "oslib", "kind": ["lib"]}
					]
				}
			],
			"target_directory": "/target"
		}`))
		require.NoError(t, err)

		assert.Equal(t, "osproj", metadata.BinaryName())
	})
}
