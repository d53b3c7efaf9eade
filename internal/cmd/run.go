// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/efirun/efirun/internal/efirun"
)

func newRunCommand(spec *efirun.Spec, cfg IO) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "build, stage and boot the EFI application under QEMU",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			err := prepareSpec(spec)
			if err != nil {
				return err
			}

			return efirun.Run(
				cobraCmd.Context(),
				spec,
				cfg.Stdout,
				cfg.Stderr,
			)
		},
	}

	addBuildFlags(cmd.Flags(), spec)
	addStageFlags(cmd.Flags(), spec)
	addQemuFlags(cmd.Flags(), spec)

	return cmd
}
