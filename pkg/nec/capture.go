// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// CapturedSample is one raw sensed interval as stored in a capture file.
// Durations are kept in microseconds so captures are stable across platforms
// and easy to eyeball in a CBOR dump.
type CapturedSample struct {
	Micros int64 `cbor:"us"`
	Space  bool  `cbor:"space"`
}

// Pulse converts the stored sample back into a pipeline pulse
func (s CapturedSample) Pulse() Pulse {
	return Pulse{
		Duration: time.Duration(s.Micros) * time.Microsecond,
		IsSpace:  s.Space,
	}
}

// Capturing converts a pulse into its capture-file representation
func Capturing(p Pulse) CapturedSample {
	return CapturedSample{
		Micros: int64(p.Duration / time.Microsecond),
		Space:  p.IsSpace,
	}
}

// Capture is a recorded raw sample stream, replayable through the decode
// pipeline without any hardware attached.
type Capture struct {
	Device     string           `cbor:"device,omitempty"`
	Note       string           `cbor:"note,omitempty"`
	CapturedAt time.Time        `cbor:"captured_at"`
	Samples    []CapturedSample `cbor:"samples"`
}

// WriteCapture encodes a capture as CBOR to w
func WriteCapture(w io.Writer, c *Capture) error {
	data, err := cbor.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode capture: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write capture: %w", err)
	}
	return nil
}

// ReadCapture decodes a CBOR capture from r
func ReadCapture(r io.Reader) (*Capture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}

	var c Capture
	if err := cbor.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode capture: %w", err)
	}
	return &c, nil
}
