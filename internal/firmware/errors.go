// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package firmware

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned if no firmware images could be located in any of
// the search directories.
var ErrNotFound = errors.New("no OVMF firmware images found")

// ImageError wraps an error for a specific firmware image file.
type ImageError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *ImageError) Error() string {
	return fmt.Sprintf("firmware image %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ImageError) Is(other error) bool {
	_, ok := other.(*ImageError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ImageError) Unwrap() error {
	return e.Err
}
