// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/efirun/efirun/internal/efirun"
	"github.com/efirun/efirun/internal/sys"
)

const rootLong = `efirun drives the edit-build-boot loop of a UEFI application:
it compiles the project with cargo for a freestanding UEFI target, stages
the executable at the removable-media boot path (EFI/BOOT/BOOTX64.EFI) of a
staging directory, and boots it under QEMU with OVMF firmware attached as
pflash drives and the staging directory as a raw FAT drive.`

func newRootCommand(spec *efirun.Spec, cfg IO) *cobra.Command {
	var debugFlag bool

	root := &cobra.Command{
		Use:           "efirun",
		Short:         "build, stage and boot UEFI applications under QEMU",
		Long:          rootLong,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(cfg.Stderr, debugFlag)
		},
	}

	persistent := root.PersistentFlags()
	persistent.Var(
		newTextValue((*sys.FilePath)(&spec.Project.Root), "path"),
		"project-root",
		"project root directory (default: nearest Cargo.toml upwards)",
	)
	persistent.BoolVar(
		&debugFlag,
		"debug",
		false,
		"enable debug output",
	)

	root.AddCommand(
		newBuildCommand(spec, cfg),
		newStageCommand(spec, cfg),
		newRunCommand(spec, cfg),
	)

	return root
}

func addBuildFlags(flags *pflag.FlagSet, spec *efirun.Spec) {
	flags.Var(
		newTextValue(&spec.Project.Arch, "arch"),
		"arch",
		"target architecture: amd64, arm64 (default: host architecture)",
	)
	flags.Var(
		newTextValue(&spec.Project.Profile, "profile"),
		"profile",
		"cargo build profile: debug, release",
	)
	flags.StringSliceVar(
		&spec.Project.Features,
		"features",
		nil,
		"cargo features to enable",
	)
}

func addStageFlags(flags *pflag.FlagSet, spec *efirun.Spec) {
	flags.StringVar(
		&spec.ESP.Dir,
		"esp-dir",
		"",
		"ESP staging directory (default: <project root>/esp)",
	)
	flags.BoolVar(
		&spec.Project.NoBuild,
		"no-build",
		false,
		"skip the cargo build, stage the existing artifact",
	)
}

func addQemuFlags(flags *pflag.FlagSet, spec *efirun.Spec) {
	flags.StringVar(
		&spec.Qemu.Executable,
		"qemu-bin",
		"",
		"QEMU binary to use (default depends on arch: qemu-system-*)",
	)
	flags.StringVar(
		&spec.Qemu.Machine,
		"machine",
		"",
		"QEMU machine type to use (default depends on arch)",
	)
	flags.StringVar(
		&spec.Qemu.CPU,
		"cpu",
		"",
		"QEMU CPU type to use",
	)
	flags.Uint64Var(
		&spec.Qemu.SMP,
		"smp",
		0,
		"number of CPUs for the QEMU VM",
	)
	flags.Uint64Var(
		&spec.Qemu.Memory,
		"memory",
		0,
		"memory (in MB) for the QEMU VM",
	)
	flags.Var(
		newTextValue((*sys.FilePath)(&spec.Qemu.FirmwareCode), "path"),
		"ovmf-code",
		"OVMF firmware code image (default: search project root and "+
			"system locations)",
	)
	flags.Var(
		newTextValue((*sys.FilePath)(&spec.Qemu.FirmwareVars), "path"),
		"ovmf-vars",
		"OVMF firmware variable store image",
	)
	flags.BoolVar(
		&spec.Qemu.PersistentVars,
		"persistent-vars",
		false,
		"attach the variable store writable so boot variables survive runs",
	)
	flags.BoolVar(
		&spec.Qemu.NoKVM,
		"nokvm",
		false,
		"disable hardware support (default is enabled if present and the "+
			"target matches the host arch)",
	)
	flags.BoolVar(
		&spec.Qemu.Spawn,
		"spawn",
		false,
		"run QEMU as a child process with serial console on stdio instead "+
			"of replacing the efirun process",
	)
	flags.StringVar(
		&spec.Qemu.BootMarker,
		"boot-marker",
		"",
		"console string marking a successful boot; terminates the guest "+
			"once seen (implies --spawn)",
	)
	flags.DurationVar(
		&spec.Qemu.Timeout,
		"timeout",
		0,
		"maximum guest run time, e.g. 30s (implies --spawn)",
	)
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	return buildInfo.Main.Version
}
