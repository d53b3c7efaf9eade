// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package efirun

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efirun/efirun/internal/qemu"
)

func TestParseExtraArg(t *testing.T) {
	tests := []struct {
		raw      string
		expected qemu.Argument
	}{
		{
			raw:      "-serial mon:stdio",
			expected: qemu.RepeatableArg("serial", "mon:stdio"),
		},
		{
			raw:      "device virtio-rng-pci",
			expected: qemu.RepeatableArg("device", "virtio-rng-pci"),
		},
		{
			raw:      "-s",
			expected: qemu.RepeatableArg("s"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseExtraArg(tt.raw))
		})
	}
}
