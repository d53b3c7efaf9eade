// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package sys

import (
	"os"
	"runtime"
)

// Arch is a target architecture for the EFI application.
type Arch string

// Supported target architectures.
const (
	AMD64 Arch = "amd64"
	ARM64 Arch = "arm64"
)

// Native is the architecture of the host. Using the same architecture for
// the guest allows using KVM, if available. Use [Arch.KVMAvailable] to check.
const Native Arch = Arch(runtime.GOARCH)

func (a Arch) String() string {
	return string(a)
}

func (a Arch) IsNative() bool {
	return Native == a
}

func (a Arch) isKnown() bool {
	switch a {
	case AMD64, ARM64:
		return true
	default:
		return false
	}
}

// KVMAvailable checks if KVM support is available for the architecture.
func (a Arch) KVMAvailable() bool {
	if !a.IsNative() {
		return false
	}

	f, err := os.OpenFile("/dev/kvm", os.O_WRONLY, 0)
	_ = f.Close()

	return err == nil
}

// MarshalText implements [encoding.TextMarshaler].
func (a Arch) MarshalText() ([]byte, error) {
	if !a.isKnown() {
		return nil, ErrArchNotSupported
	}

	return []byte(a), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Arch) UnmarshalText(text []byte) error {
	arch := Arch(text)

	if !arch.isKnown() {
		return ErrArchNotSupported
	}

	*a = arch

	return nil
}
