// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cargo

import (
	"github.com/efirun/efirun/internal/sys"
)

// Profile selects the cargo build profile. It determines the artifact
// output directory.
type Profile string

const (
	ProfileDebug   Profile = "debug"
	ProfileRelease Profile = "release"
)

func (p Profile) isKnown() bool {
	switch p {
	case ProfileDebug, ProfileRelease:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (p Profile) String() string {
	return string(p)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Profile) MarshalText() ([]byte, error) {
	if !p.isKnown() {
		return nil, ErrProfileInvalid
	}

	return []byte(p), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Profile) UnmarshalText(text []byte) error {
	profile := Profile(text)

	if !profile.isKnown() {
		return ErrProfileInvalid
	}

	*p = profile

	return nil
}

// TargetTriple returns the freestanding UEFI target triple for the given
// architecture.
func TargetTriple(arch sys.Arch) (string, error) {
	switch arch {
	case sys.AMD64:
		return "x86_64-unknown-uefi", nil
	case sys.ARM64:
		return "aarch64-unknown-uefi", nil
	default:
		return "", sys.ErrArchNotSupported
	}
}
