// SPDX-License-Identifier: MIT
// Package unwrap: sentinel error set.
// All failures are deterministic data-contract violations; nothing is
// retried and strategies return no partial output. Match with errors.Is.

package unwrap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvphase/phasemap"
)

var (
	// ErrInsufficientSamples is returned when fewer than MinSamples images reach
	// DemodulateN or fewer than MinCascadeSteps groups reach a cascade.
	ErrInsufficientSamples = errors.New("unwrap: insufficient samples")

	// ErrCountMismatch is returned when the image count differs from
	// steps × samples-per-step.
	ErrCountMismatch = errors.New("unwrap: image count mismatch")

	// ErrInvalidOrdering is returned when a long/short wavelength or
	// high/low frequency pair violates the required strict ordering.
	ErrInvalidOrdering = errors.New("unwrap: invalid period ordering")

	// ErrInvalidPeriod is returned for a non-positive or non-finite
	// wavelength or frequency.
	ErrInvalidPeriod = errors.New("unwrap: invalid period")

	// ErrInvalidFactor is returned when a reference scale factor is not a
	// positive finite number.
	ErrInvalidFactor = errors.New("unwrap: invalid reference factor")
)

// Shape and presence failures surface with the phasemap sentinels; the
// aliases keep the whole taxonomy reachable from this package.
var (
	ErrDimensionMismatch = phasemap.ErrDimensionMismatch
	ErrEmptyInput        = phasemap.ErrEmptyInput
)

// unwrapErrorf wraps an underlying error with the given operation tag.
func unwrapErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
