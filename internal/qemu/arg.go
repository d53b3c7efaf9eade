// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"fmt"
	"slices"
	"strings"
)

// Argument is a single QEMU command line argument with an optional value.
//
// Arguments come in two flavors: unique ones whose name may appear at most
// once on a command line, and repeatable ones that may appear any number of
// times as long as their values differ.
type Argument struct {
	name          string
	value         string
	nonUniqueName bool
}

// UniqueArg returns an [Argument] whose name may appear only once in a
// [CommandSpec] argument list. Multiple value parts are joined with commas.
func UniqueArg(name string, value ...string) Argument {
	return Argument{
		name:  name,
		value: strings.Join(value, ","),
	}
}

// RepeatableArg returns an [Argument] that may appear multiple times in a
// [CommandSpec] argument list, each occurrence with a distinct value.
func RepeatableArg(name string, value ...string) Argument {
	return Argument{
		name:          name,
		value:         strings.Join(value, ","),
		nonUniqueName: true,
	}
}

// String renders the argument the way it appears on the command line.
func (a Argument) String() string {
	s := "-" + a.name
	if a.value != "" {
		s += " " + a.value
	}

	return s
}

// Name returns the argument's name.
func (a Argument) Name() string {
	return a.name
}

// Value returns the argument's value.
func (a Argument) Value() string {
	return a.value
}

// Equal reports whether the two arguments would collide on a command line.
// Unique arguments collide by name alone, repeatable ones only if the value
// matches as well.
func (a Argument) Equal(other Argument) bool {
	if a.name != other.name {
		return false
	}

	if a.nonUniqueName {
		return a.value == other.value
	}

	return true
}

// BuildArgumentStrings flattens the [Argument]s into the string slice
// passed to [os/exec.Command]. Any collision fails the whole list.
func BuildArgumentStrings(args []Argument) ([]string, error) {
	argStrings := make([]string, 0, len(args))

	for idx, arg := range args {
		if i := slices.IndexFunc(args[:idx], arg.Equal); i != -1 {
			return nil, fmt.Errorf(
				"%w: %s, %s",
				ErrArgumentCollision,
				arg.String(),
				args[i].String(),
			)
		}

		argStrings = append(argStrings, "-"+arg.name)

		if arg.value != "" {
			argStrings = append(argStrings, arg.value)
		}
	}

	return argStrings, nil
}
