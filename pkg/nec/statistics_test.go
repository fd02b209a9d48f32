// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import (
	"strings"
	"testing"
)

func TestStatistics_Update(t *testing.T) {
	stats := NewStatistics()

	msg, _ := ValidateWord(0x20DF10EF)
	stats.Update(msg, nil)
	stats.Update(msg, nil)
	stats.Update(nil, &DecodeError{Kind: ErrWrongFrameLength, Message: "short"})
	stats.Update(nil, &DecodeError{Kind: ErrChecksumMismatch, Message: "bad"})
	stats.Update(nil, &DecodeError{Kind: ErrInvalidSpace, Message: "odd"})

	if stats.TotalFrames != 5 {
		t.Errorf("TotalFrames = %d, want 5", stats.TotalFrames)
	}
	if stats.ValidFrames != 2 {
		t.Errorf("ValidFrames = %d, want 2", stats.ValidFrames)
	}
	if stats.ErrorCount() != 3 {
		t.Errorf("ErrorCount() = %d, want 3", stats.ErrorCount())
	}
	if stats.LengthErrors != 1 || stats.ChecksumErrors != 1 || stats.SpaceErrors != 1 {
		t.Errorf("per-kind counters wrong: %+v", stats)
	}
}

func TestStatistics_String(t *testing.T) {
	stats := NewStatistics()
	stats.Update(nil, &DecodeError{Kind: ErrMalformedFraming, Message: "no opening space"})

	out := stats.String()
	if !strings.Contains(out, "Total Frames") {
		t.Errorf("summary missing totals:\n%s", out)
	}
	if !strings.Contains(out, "Malformed Framing") {
		t.Errorf("summary missing framing error line:\n%s", out)
	}
}

func TestStatistics_Reset(t *testing.T) {
	stats := NewStatistics()
	stats.Update(nil, &DecodeError{Kind: ErrInvalidBurst, Message: "long burst"})
	stats.Reset()

	if stats.TotalFrames != 0 || stats.ErrorCount() != 0 {
		t.Errorf("Reset left counters: %+v", stats)
	}
}
