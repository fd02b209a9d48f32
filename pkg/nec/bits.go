// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import "fmt"

// ExtractWord assembles the 32-bit command word from a validated 64-pulse
// data section. Each odd-indexed pulse is a space carrying one bit: a small
// gap is 0, a large gap is 1, concatenated most-significant-bit first. The
// even-indexed bursts are uniform length and carry nothing.
func ExtractWord(data []Pulse) (uint32, *DecodeError) {
	if len(data) != DataPulses {
		return 0, &DecodeError{
			Kind:    ErrWrongFrameLength,
			Message: fmt.Sprintf("wrong data section length: expected %d pulses, got %d", DataPulses, len(data)),
			Details: map[string]interface{}{"expected": DataPulses, "actual": len(data)},
		}
	}

	var word uint32
	for i := 1; i < DataPulses; i += 2 {
		word <<= 1
		switch Classify(data[i].Duration) {
		case ClassSmallGap:
			// bit 0
		case ClassLargeGap:
			word |= 1
		default:
			// ValidateFrame already excludes this; double-check rather than
			// emit a bit from an unclassifiable space
			return 0, &DecodeError{
				Kind:    ErrInvalidSpace,
				Message: fmt.Sprintf("data space %d outside both tolerance windows (%v)", i, data[i].Duration),
				Details: map[string]interface{}{"at_index": i, "duration": data[i].Duration},
			}
		}
	}

	return word, nil
}
