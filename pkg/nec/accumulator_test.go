// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import (
	"testing"
	"time"
)

// timeout is a sample no receiver emits mid-frame: past MaxPulseRead it can
// only mark a frame boundary
var timeout = Pulse{Duration: 70 * time.Millisecond, IsSpace: false}

// feedAll runs a sample sequence through the accumulator and collects every
// emitted outcome
func feedAll(a *Accumulator, pulses []Pulse) (msgs []*Message, errs []*DecodeError) {
	for _, p := range pulses {
		msg, derr := a.Feed(p)
		if msg != nil {
			msgs = append(msgs, msg)
		}
		if derr != nil {
			errs = append(errs, derr)
		}
	}
	return msgs, errs
}

func TestAccumulator_IdleIgnoresOutOfRange(t *testing.T) {
	a := NewAccumulator()

	noise := []Pulse{
		{Duration: 20 * time.Microsecond, IsSpace: false},
		{Duration: 70 * time.Millisecond, IsSpace: true},
		{Duration: 10 * time.Microsecond, IsSpace: true},
		{Duration: 100 * time.Millisecond, IsSpace: false},
	}
	for i := 0; i < 50; i++ {
		msg, derr := a.Feed(noise[i%len(noise)])
		if msg != nil || derr != nil {
			t.Fatalf("idle noise sample %d produced an emission: msg=%v err=%v", i, msg, derr)
		}
	}
	if a.Pending() != 0 {
		t.Errorf("Pending() = %d after idle noise, want 0", a.Pending())
	}
}

func TestAccumulator_DecodesFrameOnTimeout(t *testing.T) {
	a := NewAccumulator()

	frame := buildFrame(0x20DF40BF)
	for i, p := range frame {
		msg, derr := a.Feed(p)
		if msg != nil || derr != nil {
			t.Fatalf("pulse %d emitted before frame boundary: msg=%v err=%v", i, msg, derr)
		}
	}
	if a.Pending() != FrameLength {
		t.Fatalf("Pending() = %d, want %d", a.Pending(), FrameLength)
	}

	msg, derr := a.Feed(timeout)
	if derr != nil {
		t.Fatalf("unexpected decode error: %v", derr)
	}
	if msg == nil || msg.Raw() != 0x20DF40BF {
		t.Fatalf("expected 0x20DF40BF, got %v", msg)
	}
	if a.Pending() != 0 {
		t.Errorf("accumulator not reset after emission: Pending() = %d", a.Pending())
	}

	// The timeout that follows an emission finds an empty buffer: silence
	msg, derr = a.Feed(timeout)
	if msg != nil || derr != nil {
		t.Errorf("second timeout produced an emission: msg=%v err=%v", msg, derr)
	}
}

func TestAccumulator_ExactlyOneOutcomePerFrame(t *testing.T) {
	a := NewAccumulator()

	var stream []Pulse
	stream = append(stream, buildFrame(0x20DF10EF)...)
	stream = append(stream, timeout)
	stream = append(stream, buildFrame(0x00FF827D)...)
	stream = append(stream, timeout)
	stream = append(stream, buildFrame(0x00FFA25D)[:40]...) // truncated frame
	stream = append(stream, timeout)

	msgs, errs := feedAll(a, stream)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 decoded messages, got %d", len(msgs))
	}
	if msgs[0].Raw() != 0x20DF10EF || msgs[1].Raw() != 0x00FF827D {
		t.Errorf("decoded 0x%08X, 0x%08X", msgs[0].Raw(), msgs[1].Raw())
	}
	if len(errs) != 1 || errs[0].Kind != ErrWrongFrameLength {
		t.Fatalf("expected one ErrWrongFrameLength, got %v", errs)
	}
}

func TestAccumulator_RecoversAfterError(t *testing.T) {
	a := NewAccumulator()

	// A garbage burst run, finalized by timeout, fails but must not wedge
	// the state machine
	for i := 0; i < 5; i++ {
		a.Feed(Pulse{Duration: 2 * time.Millisecond, IsSpace: i%2 == 0})
	}
	msg, derr := a.Feed(timeout)
	if msg != nil || derr == nil {
		t.Fatalf("garbage frame should fail: msg=%v err=%v", msg, derr)
	}

	msgs, errs := feedAll(a, append(buildFrame(0x20DF906F), timeout))
	if len(errs) != 0 {
		t.Fatalf("decode after failure errored: %v", errs)
	}
	if len(msgs) != 1 || msgs[0].Raw() != 0x20DF906F {
		t.Fatalf("expected 0x20DF906F after recovery, got %v", msgs)
	}
}

func TestAccumulator_ScenarioFromFieldCapture(t *testing.T) {
	a := NewAccumulator()

	// Stray short noise while idle: buffered or ignored, but never emitted
	if msg, derr := a.Feed(Pulse{Duration: 300 * time.Microsecond, IsSpace: false}); msg != nil || derr != nil {
		t.Fatalf("noise emitted: msg=%v err=%v", msg, derr)
	}
	a.Reset()

	// A full transmission with a short pre-frame idle space, closed by the
	// receiver's timeout read
	frame := buildFrame(0x00FF12ED)
	frame[0] = Pulse{Duration: 200 * time.Microsecond, IsSpace: true}

	msgs, errs := feedAll(a, append(frame, timeout))
	if len(msgs)+len(errs) != 1 {
		t.Fatalf("expected exactly one outcome, got %d messages and %d errors", len(msgs), len(errs))
	}
	if len(msgs) != 1 || msgs[0].Raw() != 0x00FF12ED {
		t.Fatalf("expected 0x00FF12ED, got msgs=%v errs=%v", msgs, errs)
	}
}

func TestAccumulator_Reset(t *testing.T) {
	a := NewAccumulator()
	a.Feed(Pulse{Duration: NominalSmallGap, IsSpace: true})
	a.Feed(Pulse{Duration: NominalSmallGap, IsSpace: false})
	if a.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", a.Pending())
	}

	a.Reset()
	if a.Pending() != 0 {
		t.Errorf("Pending() = %d after Reset, want 0", a.Pending())
	}
	if msg, derr := a.Feed(timeout); msg != nil || derr != nil {
		t.Errorf("timeout after Reset emitted: msg=%v err=%v", msg, derr)
	}
}
