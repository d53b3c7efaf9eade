// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efirun/efirun/internal/efirun"
)

func newStageCommand(spec *efirun.Spec, cfg IO) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "build and stage the EFI application into the ESP tree",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			err := prepareSpec(spec)
			if err != nil {
				return err
			}

			staged, err := efirun.Stage(
				cobraCmd.Context(),
				spec,
				cfg.Stdout,
				cfg.Stderr,
			)
			if err != nil {
				return err
			}

			fmt.Fprintln(cfg.Stdout, staged)

			return nil
		},
	}

	addBuildFlags(cmd.Flags(), spec)
	addStageFlags(cmd.Flags(), spec)

	return cmd
}
