// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package sys

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilePath is an absolute path to a file.
//
// It implements [encoding.TextUnmarshaler] so it can be used directly as a
// flag value. Setting it normalizes the input to an absolute path.
type FilePath string

func (f FilePath) String() string {
	return string(f)
}

func (f FilePath) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

func (f *FilePath) UnmarshalText(text []byte) error {
	var err error
	*f, err = AbsoluteFilePath(string(text))

	return err
}

// Check returns an error if the path does not point to an existing regular
// file.
func (f FilePath) Check() error {
	stat, err := os.Stat(string(f))
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	return nil
}

// AbsoluteFilePath normalizes the given path to an absolute [FilePath].
func AbsoluteFilePath(path string) (FilePath, error) {
	if path == "" {
		return "", ErrEmptyFilePath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("ensure absolute path: %w", err)
	}

	return FilePath(path), nil
}
