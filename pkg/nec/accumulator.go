// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

// Accumulator groups a live stream of pulses into candidate frames and runs
// completed frames through the decode pipeline.
//
// It is a two-state machine: idle while the buffer is empty, accumulating
// otherwise. Pulses with durations strictly between MinPulseRead and
// MaxPulseRead are buffered; anything outside that range either marks the end
// of the frame being accumulated or, when idle, is ignored as inter-frame
// noise. The buffer has exactly one writer and no frame is decoded before it
// is complete.
type Accumulator struct {
	buffer []Pulse
}

// NewAccumulator creates a new frame accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{
		buffer: make([]Pulse, 0, FrameLength),
	}
}

// Reset discards any buffered pulses and returns to idle
func (a *Accumulator) Reset() {
	a.buffer = a.buffer[:0]
}

// Pending returns the number of pulses buffered for the frame in progress
func (a *Accumulator) Pending() int {
	return len(a.buffer)
}

// Feed processes a single sensed pulse.
// Returns a decoded message once a finalized frame passes the full pipeline,
// or a DecodeError when it does not; (nil, nil) while a frame is still
// accumulating or while idle. Every finalized frame yields exactly one
// outcome, and any outcome resets the accumulator.
func (a *Accumulator) Feed(p Pulse) (*Message, *DecodeError) {
	if p.Duration > MinPulseRead && p.Duration < MaxPulseRead {
		a.buffer = append(a.buffer, p)
		return nil, nil
	}

	// Idle: noise or timeout between transmissions, nothing to finalize
	if len(a.buffer) == 0 {
		return nil, nil
	}

	frame := a.buffer
	a.buffer = make([]Pulse, 0, FrameLength)
	return DecodeFrame(frame)
}

// DecodeFrame runs a complete buffered frame through the decode pipeline:
// frame validation, bit extraction, checksum validation.
func DecodeFrame(pulses []Pulse) (*Message, *DecodeError) {
	data, derr := ValidateFrame(pulses)
	if derr != nil {
		return nil, derr
	}

	word, derr := ExtractWord(data)
	if derr != nil {
		return nil, derr
	}

	return ValidateWord(word)
}
