// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package efirun

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/efirun/efirun/internal/cargo"
	"github.com/efirun/efirun/internal/qemu"
	"github.com/efirun/efirun/internal/sys"
)

// ConfigFileName is the optional per-project configuration file, looked up
// in the project root. Command line flags override its values.
const ConfigFileName = "efirun.json"

// Config is the JSON representation of per-project defaults.
type Config struct {
	Arch       sys.Arch      `json:"arch,omitempty"`
	Profile    cargo.Profile `json:"profile,omitempty"`
	Features   []string      `json:"features,omitempty"`
	ESPDir     string        `json:"esp_dir,omitempty"`
	QemuBin    string        `json:"qemu_bin,omitempty"`
	Machine    string        `json:"machine,omitempty"`
	CPU        string        `json:"cpu,omitempty"`
	SMP        uint64        `json:"smp,omitempty"`
	Memory     uint64        `json:"memory,omitempty"`
	OVMFCode   string        `json:"ovmf_code,omitempty"`
	OVMFVars   string        `json:"ovmf_vars,omitempty"`
	BootMarker string        `json:"boot_marker,omitempty"`
	ExtraArgs  []string      `json:"qemu_extra_args,omitempty"`
}

// LoadConfig reads the project configuration file from the given project
// root. A missing file is not an error and yields an empty [Config].
func LoadConfig(projectRoot string) (*Config, error) {
	path := filepath.Join(projectRoot, ConfigFileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config Config

	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	return &config, nil
}

// ApplyTo copies the configured values into the given [Spec], filling only
// fields that are still unset so flag values keep precedence.
//
// Relative paths in the config are resolved against the project root.
func (c *Config) ApplyTo(spec *Spec, projectRoot string) {
	if spec.Project.Arch == sys.Native && c.Arch != "" {
		spec.Project.Arch = c.Arch
	}

	if c.Profile != "" && spec.Project.Profile == cargo.ProfileDebug {
		spec.Project.Profile = c.Profile
	}

	if len(spec.Project.Features) == 0 {
		spec.Project.Features = c.Features
	}

	applyPath(&spec.ESP.Dir, c.ESPDir, projectRoot)
	applyString(&spec.Qemu.Executable, c.QemuBin)
	applyString(&spec.Qemu.Machine, c.Machine)
	applyString(&spec.Qemu.CPU, c.CPU)

	if spec.Qemu.SMP == 0 {
		spec.Qemu.SMP = c.SMP
	}

	if spec.Qemu.Memory == 0 {
		spec.Qemu.Memory = c.Memory
	}

	applyPath(&spec.Qemu.FirmwareCode, c.OVMFCode, projectRoot)
	applyPath(&spec.Qemu.FirmwareVars, c.OVMFVars, projectRoot)
	applyString(&spec.Qemu.BootMarker, c.BootMarker)

	if len(spec.Qemu.ExtraArgs) == 0 {
		for _, arg := range c.ExtraArgs {
			spec.Qemu.ExtraArgs = append(
				spec.Qemu.ExtraArgs,
				parseExtraArg(arg),
			)
		}
	}
}

func applyString(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func applyPath(dst *string, value, root string) {
	if *dst != "" || value == "" {
		return
	}

	if !filepath.IsAbs(value) {
		value = filepath.Join(root, value)
	}

	*dst = value
}

// parseExtraArg converts a raw "-name value" string into an [Argument].
func parseExtraArg(raw string) qemu.Argument {
	raw = strings.TrimLeft(raw, "-")
	name, value, _ := strings.Cut(raw, " ")

	return qemu.RepeatableArg(name, value)
}
