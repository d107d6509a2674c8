// SPDX-License-Identifier: MIT
// Package: phasemap
//
// Purpose:
//   - Provide a single, canonical source of truth for presence and shape checks.
//   - Keep kernels minimal by delegating nil/empty/shape guards here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → NonEmpty → SameShape.

package phasemap

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateMap ensures m is non-nil and carries at least one sample.
// Returns ErrNilMap or ErrEmptyInput.
// Complexity: O(1).
func ValidateMap(m *Map) error {
	if m == nil {
		return validatorErrorf("ValidateMap", ErrNilMap)
	}
	if m.r <= 0 || m.c <= 0 || len(m.data) != m.r*m.c {
		return validatorErrorf("ValidateMap", ErrEmptyInput)
	}

	return nil
}

// ValidateImage ensures im is non-nil and well-formed.
// Returns ErrNilImage or ErrBadShape.
// Complexity: O(1).
func ValidateImage(im *Image) error {
	if im == nil {
		return validatorErrorf("ValidateImage", ErrNilImage)
	}
	if im.rows <= 0 || im.cols <= 0 || len(im.pix) != im.rows*im.cols {
		return validatorErrorf("ValidateImage", ErrBadShape)
	}

	return nil
}

// ValidateMapsSameShape – Composite: ValidateMap(each) → equal rows×cols.
//
// Errors: ErrNilMap, ErrEmptyInput, ErrDimensionMismatch.
// Complexity: O(len(ms)).
func ValidateMapsSameShape(ms ...*Map) error {
	for i, m := range ms {
		if err := ValidateMap(m); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateMapsSameShape[%d]", i), err)
		}
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].r != ms[0].r || ms[i].c != ms[0].c {
			return validatorErrorf(fmt.Sprintf("ValidateMapsSameShape[%d]", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateImagesSameShape – Composite: ValidateImage(each) → equal rows×cols.
//
// Errors: ErrNilImage, ErrBadShape, ErrDimensionMismatch.
// Complexity: O(len(ims)).
func ValidateImagesSameShape(ims ...*Image) error {
	for i, im := range ims {
		if err := ValidateImage(im); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateImagesSameShape[%d]", i), err)
		}
	}
	for i := 1; i < len(ims); i++ {
		if ims[i].rows != ims[0].rows || ims[i].cols != ims[0].cols {
			return validatorErrorf(fmt.Sprintf("ValidateImagesSameShape[%d]", i), ErrDimensionMismatch)
		}
	}

	return nil
}
