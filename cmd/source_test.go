// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pulsecraft/irscope/pkg/nec"
)

func TestParseSampleLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected nec.Pulse
		wantErr  bool
	}{
		{"space", "s 4500", nec.Pulse{Duration: 4500 * time.Microsecond, IsSpace: true}, false},
		{"burst", "b 9000", nec.Pulse{Duration: 9 * time.Millisecond, IsSpace: false}, false},
		{"zero duration", "s 0", nec.Pulse{Duration: 0, IsSpace: true}, false},
		{"unknown level", "x 100", nec.Pulse{}, true},
		{"missing duration", "s", nec.Pulse{}, true},
		{"extra field", "s 100 200", nec.Pulse{}, true},
		{"non-numeric duration", "b nine", nec.Pulse{}, true},
		{"negative duration", "b -5", nec.Pulse{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pulse, err := parseSampleLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseSampleLine(%q) succeeded, want error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSampleLine(%q) error: %v", tt.line, err)
			}
			if pulse != tt.expected {
				t.Errorf("parseSampleLine(%q) = %+v, want %+v", tt.line, pulse, tt.expected)
			}
		})
	}
}

func TestSampleReader_SkipsBlankLines(t *testing.T) {
	input := "s 200\n\n\nb 9000\n  \ns 4500\n"
	reader := NewSampleReader(strings.NewReader(input))

	var pulses []nec.Pulse
	for {
		pulse, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		pulses = append(pulses, pulse)
	}

	if len(pulses) != 3 {
		t.Fatalf("got %d pulses, want 3", len(pulses))
	}
	if !pulses[0].IsSpace || pulses[1].IsSpace || !pulses[2].IsSpace {
		t.Errorf("pulse levels wrong: %+v", pulses)
	}
}

func TestSampleReader_MalformedLineReported(t *testing.T) {
	reader := NewSampleReader(strings.NewReader("garbage line\nb 562\n"))

	if _, err := reader.Next(); err == nil {
		t.Fatal("expected error for malformed line")
	}

	// The reader recovers on the next line
	pulse, err := reader.Next()
	if err != nil {
		t.Fatalf("Next() after malformed line: %v", err)
	}
	if pulse.IsSpace || pulse.Duration != 562*time.Microsecond {
		t.Errorf("pulse = %+v", pulse)
	}
}

func TestSampleReader_StreamDecodesEndToEnd(t *testing.T) {
	// A full LG power-toggle transmission in the receiver line protocol
	var sb strings.Builder
	sb.WriteString("s 40000\nb 9000\ns 4500\n")
	word := uint32(0x20DF10EF)
	for bit := 31; bit >= 0; bit-- {
		sb.WriteString("b 562\n")
		if word&(1<<uint(bit)) != 0 {
			sb.WriteString("s 1687\n")
		} else {
			sb.WriteString("s 562\n")
		}
	}
	sb.WriteString("b 562\n")
	sb.WriteString("s 70000\n") // inter-frame timeout

	reader := NewSampleReader(strings.NewReader(sb.String()))
	accumulator := nec.NewAccumulator()

	var decoded *nec.Message
	for {
		pulse, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		msg, derr := accumulator.Feed(pulse)
		if derr != nil {
			t.Fatalf("decode error: %v", derr)
		}
		if msg != nil {
			decoded = msg
		}
	}

	if decoded == nil || decoded.Raw() != word {
		t.Fatalf("decoded %v, want 0x%08X", decoded, word)
	}
}
