// SPDX-License-Identifier: MIT
// Package phasemap: sentinel error set.
// Every exported operation returns one of these sentinels, optionally
// wrapped with the operation name ("op: %w"). Tests match them via errors.Is.

package phasemap

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0)
	// or when a sample buffer does not hold exactly rows*cols values.
	ErrBadShape = errors.New("phasemap: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("phasemap: index out of range")

	// ErrDimensionMismatch indicates that two grids expected to share
	// rows×cols differ.
	ErrDimensionMismatch = errors.New("phasemap: dimension mismatch")

	// ErrNilMap indicates that a nil *Map was passed where a map is required.
	ErrNilMap = errors.New("phasemap: nil map")

	// ErrNilImage indicates that a nil *Image was passed where an image is required.
	ErrNilImage = errors.New("phasemap: nil image")

	// ErrEmptyInput indicates that a map expected to carry samples is empty.
	ErrEmptyInput = errors.New("phasemap: empty input")
)

// errorf wraps an underlying error with the given operation tag.
func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
