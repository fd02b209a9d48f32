// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

// Package nec provides reception-side decoding of the NEC infrared
// transmission protocol.
//
// The package turns timed level intervals sensed from an IR receiver into
// validated 32-bit command words (address, inverse address, command, inverse
// command). It contains the pulse classifier, frame validator, bit extractor,
// checksum validator, and the accumulator state machine that drives them.
//
// NEC protocol references:
// https://www.sbprojects.net/knowledge/ir/nec.php
// https://techdocs.altium.com/display/FPGA/NEC+Infrared+Transmission+Protocol
package nec

import "time"

// Nominal NEC pulse timings. A space of roughly one unit encodes bit 0, a
// space of roughly three units encodes bit 1. Bursts are always one unit.
const (
	Unit = 562500 * time.Nanosecond // 562.5 us

	NominalSmallGap = Unit     // bursts and bit-0 spaces
	NominalLargeGap = Unit * 3 // bit-1 spaces, 1687.5 us
	LeadBurst       = Unit * 16
	LeadSpace       = Unit * 8

	// Tolerance is the classification window around each nominal duration.
	// Chosen empirically; must stay below (NominalLargeGap-NominalSmallGap)/2
	// so the two windows can never overlap.
	Tolerance = 270 * time.Microsecond
)

// Frame structure. A complete transmission is 68 pulses: the idle space
// preceding it, the 9 ms lead burst, the 4.5 ms lead space, 64 alternating
// data pulses (32 burst/space bit pairs), and the trailing burst.
const (
	FrameLength   = 68
	LeadingPulses = 3 // idle space + lead burst + lead space
	DataPulses    = 64
	WordBits      = 32
)

// Accumulator pulse bounds. Intervals outside this range are either sensor
// noise or the inter-frame timeout, and mark a frame boundary.
const (
	MinPulseRead = 50 * time.Microsecond
	MaxPulseRead = 65 * time.Millisecond
)
