// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efirun/efirun/internal/qemu"
)

// fakeGuest writes a shell script that stands in for the qemu-system binary.
// It ignores the QEMU arguments it is invoked with.
func fakeGuest(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "qemu-system-fake")
	content := "#!/bin/sh\n" + script + "\n"

	err := os.WriteFile(path, []byte(content), 0o700)
	require.NoError(t, err)

	return path
}

func newTestCommand(t *testing.T, executable, marker string) *qemu.Command {
	t.Helper()

	cmd, err := qemu.NewCommand(qemu.CommandSpec{
		Executable:   executable,
		FirmwareCode: "/fw/OVMF_CODE.fd",
		FirmwareVars: "/fw/OVMF_VARS.fd",
		ESPDir:       "/proj/esp",
		NoKVM:        true,
		Headless:     true,
		BootMarker:   marker,
	})
	require.NoError(t, err)

	return cmd
}

func TestCommandRun(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		marker    string
		assertErr require.ErrorAssertionFunc
	}{
		{
			name:      "marker terminates guest",
			script:    `echo "Booting OS"; exec sleep 30`,
			marker:    "Booting OS",
			assertErr: require.NoError,
		},
		{
			name:   "boot failure terminates guest",
			script: `echo "BdsDxe: failed to load Boot0001"; exec sleep 30`,
			marker: "Booting OS",
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, qemu.ErrGuestBootFailure)
			},
		},
		{
			name:   "exit without marker",
			script: `echo "UEFI Interactive Shell v2.2"`,
			marker: "Booting OS",
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, qemu.ErrGuestNoBootMarker)
			},
		},
		{
			name:   "non-zero exit status",
			script: `exit 3`,
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, qemu.ErrGuestNonZeroExitCode)

				var cmdErr *qemu.CommandError
				require.ErrorAs(t, err, &cmdErr)
				assert.Equal(t, 3, cmdErr.ExitCode)
			},
		},
		{
			name:      "clean exit without marker requested",
			script:    `echo done`,
			assertErr: require.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			executable := fakeGuest(t, tt.script)
			cmd := newTestCommand(t, executable, tt.marker)

			var stdout, stderr bytes.Buffer

			err := cmd.Run(ctx, &stdout, &stderr)
			tt.assertErr(t, err)
		})
	}
}

func TestCommandRunCopiesConsoleOutput(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	executable := fakeGuest(t, `echo "Booting OS"; exec sleep 30`)
	cmd := newTestCommand(t, executable, "Booting OS")

	var stdout bytes.Buffer

	err := cmd.Run(ctx, &stdout, nil)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Booting OS")
}

func TestCommandRunTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	executable := fakeGuest(t, `exec sleep 30`)
	cmd := newTestCommand(t, executable, "never printed")

	err := cmd.Run(ctx, nil, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCommandString(t *testing.T) {
	cmd := newTestCommand(t, "qemu-system-x86_64", "")

	str := cmd.String()
	assert.Contains(t, str, "qemu-system-x86_64 ")
	assert.Contains(t, str, "fat:rw:/proj/esp")
}
