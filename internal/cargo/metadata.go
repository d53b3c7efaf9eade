// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// Metadata is the subset of "cargo metadata" output efirun needs to locate
// build artifacts.
type Metadata struct {
	Packages []Package `json:"packages"`

	// TargetDirectory is the root of cargo's build output. Artifacts for
	// cross targets live below it at <triple>/<profile>/.
	TargetDirectory string `json:"target_directory"`
}

// Package describes a single cargo package.
type Package struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Targets []Target `json:"targets"`
}

// Target is a build target of a [Package].
type Target struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

// ReadMetadata runs "cargo metadata" for the project at the given directory
// and decodes the result.
func ReadMetadata(ctx context.Context, dir string) (*Metadata, error) {
	cmd := exec.CommandContext(
		ctx,
		"cargo",
		"metadata",
		"--no-deps",
		"--format-version", "1",
	)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return nil, wrapCargoError(err, stderr.String())
	}

	metadata, err := DecodeMetadata(output)
	if err != nil {
		return nil, err
	}

	return metadata, nil
}

// DecodeMetadata decodes "cargo metadata" JSON output.
func DecodeMetadata(data []byte) (*Metadata, error) {
	var metadata Metadata

	err := json.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	if len(metadata.Packages) == 0 {
		return nil, ErrNoPackage
	}

	return &metadata, nil
}

// BinaryName returns the name of the binary the project builds. The first
// package's name is cargo's default binary name.
func (m *Metadata) BinaryName() string {
	for _, pkg := range m.Packages {
		for _, target := range pkg.Targets {
			for _, kind := range target.Kind {
				if kind == "bin" {
					return target.Name
				}
			}
		}
	}

	return m.Packages[0].Name
}
