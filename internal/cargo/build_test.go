// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cargo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efirun/efirun/internal/cargo"
	"github.com/efirun/efirun/internal/sys"
)

func TestBuildSpecArgs(t *testing.T) {
	tests := []struct {
		name      string
		spec      cargo.BuildSpec
		expected  []string
		assertErr require.ErrorAssertionFunc
	}{
		{
			name: "amd64 debug",
			spec: cargo.BuildSpec{
				Arch:    sys.AMD64,
				Profile: cargo.ProfileDebug,
			},
			expected:  []string{"build", "--target", "x86_64-unknown-uefi"},
			assertErr: require.NoError,
		},
		{
			name: "arm64 release",
			spec: cargo.BuildSpec{
				Arch:    sys.ARM64,
				Profile: cargo.ProfileRelease,
			},
			expected: []string{
				"build", "--target", "aarch64-unknown-uefi", "--release",
			},
			assertErr: require.NoError,
		},
		{
			name: "features",
			spec: cargo.BuildSpec{
				Arch:     sys.AMD64,
				Features: []string{"serial-debug"},
			},
			expected: []string{
				"build", "--target", "x86_64-unknown-uefi",
				"--features", "serial-debug",
			},
			assertErr: require.NoError,
		},
		{
			name: "unsupported arch",
			spec: cargo.BuildSpec{
				Arch: sys.Arch("mips"),
			},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, sys.ErrArchNotSupported)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.spec.Args()
			tt.assertErr(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestBuildSpecArtifactPath(t *testing.T) {
	t.Run("debug default", func(t *testing.T) {
		spec := cargo.BuildSpec{Arch: sys.AMD64}

		path, err := spec.ArtifactPath("/proj/target", "osproj")
		require.NoError(t, err)
		assert.Equal(
			t,
			"/proj/target/x86_64-unknown-uefi/debug/osproj.efi",
			path,
		)
	})

	t.Run("release", func(t *testing.T) {
		spec := cargo.BuildSpec{
			Arch:    sys.ARM64,
			Profile: cargo.ProfileRelease,
		}

		path, err := spec.ArtifactPath("/proj/target", "osproj")
		require.NoError(t, err)
		assert.Equal(
			t,
			"/proj/target/aarch64-unknown-uefi/release/osproj.efi",
			path,
		)
	})
}
