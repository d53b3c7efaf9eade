// SPDX-FileCopyrightText: 2026 The efirun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding"
	"fmt"
)

// textValue adapts a text unmarshalling type to a [pflag.Value].
type textValue struct {
	value interface {
		encoding.TextUnmarshaler
		fmt.Stringer
	}
	typeName string
}

func newTextValue(
	value interface {
		encoding.TextUnmarshaler
		fmt.Stringer
	},
	typeName string,
) *textValue {
	return &textValue{value: value, typeName: typeName}
}

func (v *textValue) Set(s string) error {
	return v.value.UnmarshalText([]byte(s))
}

func (v *textValue) String() string {
	return v.value.String()
}

func (v *textValue) Type() string {
	return v.typeName
}
