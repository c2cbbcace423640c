// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when the stream ends before the magic
	// constant or a fixed size binary payload could be read in full.
	ErrTruncatedInput = errors.New("pnm: truncated input")

	// ErrUnsupportedOperation is returned by DecodeRow.
	ErrUnsupportedOperation = errors.New("pnm: operation not supported")

	// ErrAlreadyDecoded is returned when Decode is called more than once.
	ErrAlreadyDecoded = errors.New("pnm: image already decoded")

	// ErrNoReader is returned when Options.R is nil.
	ErrNoReader = errors.New("pnm: no reader provided")
)

// InvalidFormatError is used when the input does not follow the PNM grammar.
type InvalidFormatError struct {
	Err error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("pnm: invalid format: %s", e.Err)
}

// Unwrap returns the underlying error.
func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error is an InvalidFormatError.
func (e *InvalidFormatError) Is(target error) bool {
	_, ok := target.(*InvalidFormatError)
	return ok
}

// IsInvalidFormat reports whether the error was an InvalidFormatError.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, &InvalidFormatError{})
}

func newInvalidFormatError(err error) error {
	return &InvalidFormatError{Err: err}
}

func newInvalidFormatErrorf(format string, args ...any) error {
	return newInvalidFormatError(fmt.Errorf(format, args...))
}

// UnsupportedColorError is returned for well formed images using a color
// type this package does not decode, e.g. any tuple type with alpha.
type UnsupportedColorError struct {
	ColorType ColorType
}

func (e *UnsupportedColorError) Error() string {
	return fmt.Sprintf("pnm: unsupported color type %s", e.ColorType)
}

// Is reports whether the target error is an UnsupportedColorError.
func (e *UnsupportedColorError) Is(target error) bool {
	_, ok := target.(*UnsupportedColorError)
	return ok
}

// IsUnsupportedColor reports whether the error was an UnsupportedColorError.
func IsUnsupportedColor(err error) bool {
	return errors.Is(err, &UnsupportedColorError{})
}
