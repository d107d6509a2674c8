// SPDX-License-Identifier: MIT

package unwrap

import "math"

const (
	// WrapPeriod is one full fringe period (2π) in the phase/π units of a Map.
	WrapPeriod = 2.0

	// ThreeStepSamples is the group size of Demodulate3 and of each cascade step.
	ThreeStepSamples = 3

	// MinSamples is the smallest pattern count DemodulateN accepts.
	MinSamples = 3

	// MinCascadeSteps is the smallest number of groups ApplyCascaded accepts.
	MinCascadeSteps = 2
)

// sqrt3 scales the 120°/240° difference in the three-step formula.
var sqrt3 = math.Sqrt(3)

// foldPeriod maps v in [-WrapPeriod, 2*WrapPeriod) into [0, WrapPeriod).
func foldPeriod(v float64) float64 {
	if v < 0 {
		v += WrapPeriod
	}
	if v >= WrapPeriod {
		v -= WrapPeriod
	}

	return v
}

// wrapValue maps any finite v into [0, WrapPeriod).
func wrapValue(v float64) float64 {
	return foldPeriod(math.Mod(v, WrapPeriod))
}
