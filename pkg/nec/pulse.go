// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import "time"

// Pulse is a single timed level interval sensed from the receiver line.
// IsSpace is true while the line is idle/high ("space"), false while it is
// active/low ("burst"). Pulses are immutable values; the sampling layer
// produces them and the pipeline passes them along by value.
type Pulse struct {
	Duration time.Duration
	IsSpace  bool
}

// PulseClass is the classification of a pulse duration against the two
// nominal NEC gap windows.
type PulseClass int

const (
	ClassNeither PulseClass = iota
	ClassSmallGap
	ClassLargeGap
)

// Classify classifies a duration as a small gap, large gap, or neither.
// Classification depends on duration only; whether the interval was a space
// or a burst matters to framing, not here. Pure and total.
func Classify(d time.Duration) PulseClass {
	if withinTolerance(d, NominalSmallGap) {
		return ClassSmallGap
	}
	if withinTolerance(d, NominalLargeGap) {
		return ClassLargeGap
	}
	return ClassNeither
}

func withinTolerance(d, nominal time.Duration) bool {
	diff := d - nominal
	if diff < 0 {
		diff = -diff
	}
	return diff <= Tolerance
}
