// SPDX-License-Identifier: MIT

package unwrap

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvphase/phasemap"
)

const (
	opSeedCascade   = "SeedCascade"
	opAdvance       = "Cascade.Advance"
	opApplyCascaded = "ApplyCascaded"
)

// Cascade is the accumulator of a digital multi-wavelength (DMWL) cascade.
// Each Advance consumes the state and returns a new one; a Cascade is never
// modified after it is returned, so earlier states stay valid.
type Cascade struct {
	phase *phasemap.Map // accumulated unwrapped phase; owned, never exposed
	steps int           // groups folded in so far
	opts  Options
}

// SeedCascade starts a cascade from the coarsest three-step group.
// The seed state's phase is exactly Demodulate3(i0, i120, i240).
//
// Errors: those of Demodulate3.
func SeedCascade(i0, i120, i240 *phasemap.Image, opts ...Option) (Cascade, error) {
	o := gatherOptions(opts...)
	seed, err := demodulate3(o, i0, i120, i240)
	if err != nil {
		return Cascade{}, unwrapErrorf(opSeedCascade, err)
	}

	return Cascade{phase: seed, steps: 1, opts: o}, nil
}

// Advance demodulates the next (twice finer) three-step group and resolves
// its fringe order against the accumulated phase.
//
// Errors: ErrEmptyInput on a zero Cascade, plus those of Demodulate3 and
// ResolveOrderCascaded.
func (c Cascade) Advance(i0, i120, i240 *phasemap.Image) (Cascade, error) {
	if c.phase == nil {
		return Cascade{}, unwrapErrorf(opAdvance, ErrEmptyInput)
	}
	wrapped, err := demodulate3(c.opts, i0, i120, i240)
	if err != nil {
		return Cascade{}, unwrapErrorf(opAdvance, err)
	}
	next, err := resolveOrderCascaded(c.opts, c.phase, wrapped)
	if err != nil {
		return Cascade{}, unwrapErrorf(opAdvance, err)
	}

	return Cascade{phase: next, steps: c.steps + 1, opts: c.opts}, nil
}

// Phase returns a copy of the accumulated phase, or nil for a zero Cascade.
func (c Cascade) Phase() *phasemap.Map {
	if c.phase == nil {
		return nil
	}

	return c.phase.Clone()
}

// Steps reports how many three-step groups have been folded in.
func (c Cascade) Steps() int { return c.steps }

// ApplyCascaded unwraps a DMWL capture: steps groups of three images
// (0°, 120°, 240°), coarsest wavelength first, each group's wavelength half
// the previous one.
//
// Implementation:
//   - Stage 1: steps ≥ MinCascadeSteps and len(patterns) == 3·steps.
//   - Stage 2: seed with group 0, then Advance through groups 1..steps-1.
//
// Errors: ErrInsufficientSamples, ErrCountMismatch, and any failure of a
// step (wrapped with the group index). No partial result is returned.
// Complexity: Time O(steps*rows*cols), Space O(rows*cols) live at a time.
func ApplyCascaded(patterns []*phasemap.Image, steps int, opts ...Option) (*phasemap.Map, error) {
	if steps < MinCascadeSteps {
		return nil, unwrapErrorf(opApplyCascaded, ErrInsufficientSamples)
	}
	if len(patterns) != steps*ThreeStepSamples {
		return nil, fmt.Errorf("%s: expected %d images, got %d: %w",
			opApplyCascaded, steps*ThreeStepSamples, len(patterns), ErrCountMismatch)
	}

	groups := lo.Chunk(patterns, ThreeStepSamples)
	state, err := SeedCascade(groups[0][0], groups[0][1], groups[0][2], opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: group 0: %w", opApplyCascaded, err)
	}
	for i, g := range groups[1:] {
		if state, err = state.Advance(g[0], g[1], g[2]); err != nil {
			return nil, fmt.Errorf("%s: group %d: %w", opApplyCascaded, i+1, err)
		}
	}

	return state.phase, nil
}
