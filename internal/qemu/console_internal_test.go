// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleWatcher(t *testing.T) {
	tests := []struct {
		name      string
		marker    string
		lines     []string
		done      bool
		assertErr require.ErrorAssertionFunc
	}{
		{
			name:   "marker found",
			marker: "Booting OS",
			lines: []string{
				"BdsDxe: loading Boot0001 \"UEFI QEMU HARDDISK\"",
				"Booting OS",
			},
			done:      true,
			assertErr: require.NoError,
		},
		{
			name:   "marker embedded in line",
			marker: "Booting OS",
			lines: []string{
				"[    0.000] Booting OS (debug build)",
			},
			done:      true,
			assertErr: require.NoError,
		},
		{
			name:   "marker missing",
			marker: "Booting OS",
			lines: []string{
				"UEFI Interactive Shell v2.2",
			},
			done: false,
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrGuestNoBootMarker)
			},
		},
		{
			name:      "no marker requested",
			lines:     []string{"anything"},
			done:      false,
			assertErr: require.NoError,
		},
		{
			name:   "boot file load failure",
			marker: "Booting OS",
			lines: []string{
				"BdsDxe: failed to load Boot0001 \"UEFI QEMU HARDDISK\"" +
					" from PciRoot(0x0): Not Found",
			},
			done: true,
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrGuestBootFailure)
			},
		},
		{
			name: "no bootable option",
			lines: []string{
				"BdsDxe: No bootable option or device was found.",
			},
			done: true,
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrGuestBootFailure)
			},
		},
		{
			name: "x64 exception",
			lines: []string{
				"!!!! X64 Exception Type - 0D(#GP - General Protection)" +
					"  CPU Apic ID - 00000000 !!!!",
			},
			done: true,
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrGuestException)
			},
		},
		{
			name: "aarch64 exception",
			lines: []string{
				"Synchronous Exception at 0x000000023F29D28C",
			},
			done: true,
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrGuestException)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			watcher := &consoleWatcher{Marker: tt.marker}

			for _, line := range tt.lines {
				watcher.Parse([]byte(line))
			}

			assert.Equal(t, tt.done, watcher.Done(), "done")
			tt.assertErr(t, watcher.BootResult())
		})
	}
}

func TestConsoleWatcherGuestFlag(t *testing.T) {
	watcher := &consoleWatcher{Marker: "never printed"}

	err := watcher.BootResult()

	var cmdErr *CommandError

	require.ErrorAs(t, err, &cmdErr)
	assert.True(t, cmdErr.Guest)
}
