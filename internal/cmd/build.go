// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/efirun/efirun/internal/efirun"
)

func newBuildCommand(spec *efirun.Spec, cfg IO) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "compile the EFI application with cargo",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			err := prepareSpec(spec)
			if err != nil {
				return err
			}

			artifact, err := efirun.Build(
				cobraCmd.Context(),
				spec,
				cfg.Stdout,
				cfg.Stderr,
			)
			if err != nil {
				return err
			}

			fmt.Fprintln(cfg.Stdout, artifact)

			return nil
		},
	}

	addBuildFlags(cmd.Flags(), spec)

	return cmd
}

// prepareSpec resolves the project root from the working directory and
// merges the project configuration file into the spec. Flag values keep
// precedence over configured values.
func prepareSpec(spec *efirun.Spec) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	err = spec.ResolveProjectRoot(workDir)
	if err != nil {
		return err
	}

	config, err := efirun.LoadConfig(spec.Project.Root)
	if err != nil {
		return err
	}

	config.ApplyTo(spec, spec.Project.Root)

	return nil
}
