// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import "fmt"

// ValidateFrame checks that an accumulated pulse sequence forms one
// well-formed NEC frame and strips the framing pulses, returning the 64
// data-carrying pulses (32 burst/space bit pairs).
//
// Checks run in a fixed order so each error pinpoints its failure class:
// opening space, frame length, space/burst alternation, burst windows,
// space windows.
func ValidateFrame(pulses []Pulse) ([]Pulse, *DecodeError) {
	// A frame opens with the idle space that preceded the lead burst
	if len(pulses) == 0 || !pulses[0].IsSpace {
		return nil, &DecodeError{
			Kind:    ErrMalformedFraming,
			Message: "frame does not open with an idle space",
			Details: map[string]interface{}{"pulses": len(pulses)},
		}
	}

	// Length before content, so a truncated frame is reported as truncated
	// rather than as whatever content check it happens to trip first
	if len(pulses) != FrameLength {
		return nil, &DecodeError{
			Kind:    ErrWrongFrameLength,
			Message: fmt.Sprintf("wrong frame length: expected %d pulses, got %d", FrameLength, len(pulses)),
			Details: map[string]interface{}{"expected": FrameLength, "actual": len(pulses)},
		}
	}

	// Spaces at even indices, bursts at odd indices, no exceptions
	for i, p := range pulses {
		if p.IsSpace != (i%2 == 0) {
			return nil, &DecodeError{
				Kind:    ErrAlternationViolation,
				Message: fmt.Sprintf("space/burst alternation broken at pulse %d", i),
				Details: map[string]interface{}{"at_index": i},
			}
		}
	}

	// Strip the idle space, lead burst, and lead space, plus the trailing
	// burst. What remains is the 64-pulse data section.
	data := pulses[LeadingPulses : FrameLength-1]

	for i, p := range data {
		if i%2 == 0 {
			// Bursts carry no information but must still be one unit long
			if Classify(p.Duration) != ClassSmallGap {
				return nil, &DecodeError{
					Kind:    ErrInvalidBurst,
					Message: fmt.Sprintf("data burst %d outside tolerance (%v)", i, p.Duration),
					Details: map[string]interface{}{"at_index": i, "duration": p.Duration},
				}
			}
			continue
		}
		if Classify(p.Duration) == ClassNeither {
			return nil, &DecodeError{
				Kind:    ErrInvalidSpace,
				Message: fmt.Sprintf("data space %d outside both tolerance windows (%v)", i, p.Duration),
				Details: map[string]interface{}{"at_index": i, "duration": p.Duration},
			}
		}
	}

	return data, nil
}
