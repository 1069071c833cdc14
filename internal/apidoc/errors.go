// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package apidoc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required field is absent or has
	// the wrong JSON type.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidType is returned when a type position holds something
	// other than a string or an object.
	ErrInvalidType = errors.New("invalid type expression")

	// ErrEmptyList is returned for a tuple or union without elements.
	ErrEmptyList = errors.New("empty element list")
)

// ParseError locates a failure inside the source document.
type ParseError struct {
	// Path is the dotted location, e.g. classes[LuaEntity].methods[destroy].
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missingField(path, field string) error {
	return &ParseError{Path: path, Err: fmt.Errorf("%w %q", ErrMissingField, field)}
}
