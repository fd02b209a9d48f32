// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// randomPulse draws a pulse with durations spanning noise, valid timings,
// and timeouts
func randomPulse(rng *rand.Rand) Pulse {
	var d time.Duration
	switch rng.Intn(4) {
	case 0:
		d = time.Duration(rng.Intn(100)) * time.Microsecond // noise range
	case 1:
		d = time.Duration(rng.Intn(3000)) * time.Microsecond // data range
	case 2:
		d = time.Duration(rng.Intn(15000)) * time.Microsecond // framing range
	case 3:
		d = time.Duration(60000+rng.Intn(40000)) * time.Microsecond // timeout range
	}
	return Pulse{Duration: d, IsSpace: rng.Intn(2) == 1}
}

// ============================================================
// Accumulator Fuzz Tests
// ============================================================

// TestFuzzAccumulator_RandomPulses feeds random pulse streams to the
// accumulator and verifies the outcome contract holds
func TestFuzzAccumulator_RandomPulses(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		a := NewAccumulator()
		streamLen := rng.Intn(200)

		for j := 0; j < streamLen; j++ {
			msg, derr := a.Feed(randomPulse(rng))

			// Never both outcomes for one sample
			if msg != nil && derr != nil {
				t.Fatalf("round %d: Feed returned both a message and an error", i)
			}
			// Any outcome means the frame boundary reset the buffer
			if (msg != nil || derr != nil) && a.Pending() != 0 {
				t.Fatalf("round %d: accumulator not reset after outcome", i)
			}
		}
	}
}

// TestFuzzAccumulator_CorruptedFrames corrupts single pulses of valid frames
// and verifies every corruption yields exactly one typed outcome
func TestFuzzAccumulator_CorruptedFrames(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		frame := buildFrame(rng.Uint32())
		idx := rng.Intn(len(frame))
		switch rng.Intn(3) {
		case 0:
			frame[idx].Duration = time.Duration(rng.Intn(60000)) * time.Microsecond
		case 1:
			frame[idx].IsSpace = !frame[idx].IsSpace
		case 2:
			frame = append(frame[:idx], frame[idx+1:]...)
		}

		a := NewAccumulator()
		outcomes := 0
		for _, p := range frame {
			msg, derr := a.Feed(p)
			if msg != nil || derr != nil {
				outcomes++
			}
		}
		// Corruption may have split the stream into at most two candidate
		// frames (a mid-frame timeout finalizes early)
		msg, derr := a.Feed(timeout)
		if msg != nil || derr != nil {
			outcomes++
		}
		if a.Pending() != 0 {
			t.Fatalf("round %d: pulses left buffered after timeout", i)
		}
		if outcomes == 0 {
			t.Fatalf("round %d: corrupted frame produced no outcome at all", i)
		}
		if outcomes > 2 {
			t.Fatalf("round %d: %d outcomes from a single corrupted frame", i, outcomes)
		}
	}
}

// ============================================================
// Word Validation Fuzz Tests
// ============================================================

// TestFuzzValidateWord_Invariant verifies acceptance depends on exactly the
// command checksum and that accepted words round-trip through the fields
func TestFuzzValidateWord_Invariant(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		raw := rng.Uint32()
		msg, derr := ValidateWord(raw)

		command := uint8(raw >> 8)
		commandInverse := uint8(raw)
		if command^commandInverse == 0xFF {
			if derr != nil {
				t.Fatalf("0x%08X: valid checksum rejected: %v", raw, derr)
			}
			reassembled := uint32(msg.Address())<<24 | uint32(msg.AddressInverse())<<16 |
				uint32(msg.Command())<<8 | uint32(msg.CommandInverse())
			if reassembled != raw {
				t.Fatalf("0x%08X: fields reassemble to 0x%08X", raw, reassembled)
			}
		} else {
			if msg != nil || derr == nil || derr.Kind != ErrChecksumMismatch {
				t.Fatalf("0x%08X: invalid checksum accepted (msg=%v err=%v)", raw, msg, derr)
			}
		}
	}
}

// TestFuzzClassify_Exclusive verifies every duration lands in exactly one class
func TestFuzzClassify_Exclusive(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)

	for i := 0; i < rounds; i++ {
		d := time.Duration(rng.Intn(100000)) * time.Microsecond / 10
		class := Classify(d)

		small := withinTolerance(d, NominalSmallGap)
		large := withinTolerance(d, NominalLargeGap)
		switch {
		case small && class != ClassSmallGap:
			t.Fatalf("%v: in small window but classified %s", d, FormatPulseClass(class))
		case large && class != ClassLargeGap:
			t.Fatalf("%v: in large window but classified %s", d, FormatPulseClass(class))
		case !small && !large && class != ClassNeither:
			t.Fatalf("%v: outside both windows but classified %s", d, FormatPulseClass(class))
		}
	}
}
