// SPDX-License-Identifier: MIT

package unwrap

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvphase/phasemap"
)

const (
	opHeterodyneWavelength = "ApplyHeterodyneWavelength"
	opHeterodyneFrequency  = "ApplyHeterodyneFrequency"
	opHeterodynePhases     = "HeterodynePhases"
)

// Channel is one phase-shifted pattern family and its spatial period.
type Channel struct {
	Patterns []*phasemap.Image
	Period   Period
}

// ApplyHeterodyneWavelength unwraps the short-wavelength family of a
// two-wavelength (2WL) capture. The beat of the pair has period
// λlong·λshort/(λlong−λshort); as long as that exceeds the scene's phase
// range it resolves the short family's fringe order unambiguously.
//
// Steps:
//   - longPhase, shortPhase = DemodulateNWrapped of each family
//   - eq     = SubtractPhase(shortPhase, longPhase)
//   - factor = λlong/(λlong − λshort)
//   - result = ResolveOrderScaled(eq, factor, shortPhase)
//
// Errors: ErrInvalidPeriod, ErrInvalidOrdering (longWavelength ≤
// shortWavelength), ErrInsufficientSamples, ErrDimensionMismatch and image
// validation errors.
func ApplyHeterodyneWavelength(
	longPatterns []*phasemap.Image, longWavelength float64,
	shortPatterns []*phasemap.Image, shortWavelength float64,
	opts ...Option,
) (*phasemap.Map, error) {
	return heterodyne(opHeterodyneWavelength,
		Channel{Patterns: longPatterns, Period: Wavelength(longWavelength)},
		Channel{Patterns: shortPatterns, Period: Wavelength(shortWavelength)},
		gatherOptions(opts...))
}

// ApplyHeterodyneFrequency is the frequency form of
// ApplyHeterodyneWavelength (2FQ): the high-frequency family is resolved
// against the beat with the low-frequency family, with
// factor = fhigh/(fhigh − flow) and eq = SubtractPhase(highPhase, lowPhase).
//
// Errors: ErrInvalidPeriod, ErrInvalidOrdering (highFrequency ≤
// lowFrequency), ErrInsufficientSamples, ErrDimensionMismatch and image
// validation errors.
func ApplyHeterodyneFrequency(
	highPatterns []*phasemap.Image, highFrequency float64,
	lowPatterns []*phasemap.Image, lowFrequency float64,
	opts ...Option,
) (*phasemap.Map, error) {
	return heterodyne(opHeterodyneFrequency,
		Channel{Patterns: lowPatterns, Period: Frequency(lowFrequency)},
		Channel{Patterns: highPatterns, Period: Frequency(highFrequency)},
		gatherOptions(opts...))
}

// ApplyHeterodyne runs the heterodyne method on two channels given in
// either order; the channel with the longer period is the coarse reference.
func ApplyHeterodyne(a, b Channel, opts ...Option) (*phasemap.Map, error) {
	if a.Period < b.Period {
		a, b = b, a
	}

	return heterodyne("ApplyHeterodyne", a, b, gatherOptions(opts...))
}

// heterodyne demodulates both families concurrently and resolves the fine
// family against their beat.
func heterodyne(op string, coarse, fine Channel, o Options) (*phasemap.Map, error) {
	// Stage 1 (Validate): periods, sample counts, shapes across both families.
	if err := validatePair(coarse.Period, fine.Period); err != nil {
		return nil, unwrapErrorf(op, err)
	}
	if len(coarse.Patterns) < MinSamples || len(fine.Patterns) < MinSamples {
		return nil, fmt.Errorf("%s: need >= %d patterns per family, got %d and %d: %w",
			op, MinSamples, len(coarse.Patterns), len(fine.Patterns), ErrInsufficientSamples)
	}
	all := make([]*phasemap.Image, 0, len(coarse.Patterns)+len(fine.Patterns))
	all = append(append(all, coarse.Patterns...), fine.Patterns...)
	if err := phasemap.ValidateImagesSameShape(all...); err != nil {
		return nil, unwrapErrorf(op, err)
	}

	// Stage 2 (Execute): the two demodulations are independent.
	var coarsePhase, finePhase *phasemap.Map
	var g errgroup.Group
	g.Go(func() (err error) {
		coarsePhase, err = demodulateNWrapped(o, coarse.Patterns)
		return err
	})
	g.Go(func() (err error) {
		finePhase, err = demodulateNWrapped(o, fine.Patterns)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, unwrapErrorf(op, err)
	}

	// Stage 3 (Resolve): beat phase, then order of the fine family.
	out, err := heterodynePhases(o, coarsePhase, coarse.Period, finePhase, fine.Period)
	if err != nil {
		return nil, unwrapErrorf(op, err)
	}

	return out, nil
}

// HeterodynePhases runs the heterodyne step on already demodulated wrapped
// maps (both in [0,2)): the fine map is resolved against the beat of the
// pair, scaled by coarsePeriod/(coarsePeriod − finePeriod).
//
// Errors: ErrInvalidPeriod, ErrInvalidOrdering (coarsePeriod ≤ finePeriod),
// ErrNilMap, ErrEmptyInput, ErrDimensionMismatch.
func HeterodynePhases(coarse *phasemap.Map, coarsePeriod Period, fine *phasemap.Map, finePeriod Period, opts ...Option) (*phasemap.Map, error) {
	if err := validatePair(coarsePeriod, finePeriod); err != nil {
		return nil, unwrapErrorf(opHeterodynePhases, err)
	}
	out, err := heterodynePhases(gatherOptions(opts...), coarse, coarsePeriod, fine, finePeriod)
	if err != nil {
		return nil, unwrapErrorf(opHeterodynePhases, err)
	}

	return out, nil
}

func heterodynePhases(o Options, coarse *phasemap.Map, coarsePeriod Period, fine *phasemap.Map, finePeriod Period) (*phasemap.Map, error) {
	eq, err := subtractPhase(o, fine, coarse)
	if err != nil {
		return nil, err
	}

	return resolveOrderScaled(o, opResolveOrderScaled, eq, phaseFactor(coarsePeriod, finePeriod), fine)
}
