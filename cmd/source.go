// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pulsecraft/irscope/pkg/nec"
)

// SampleReader parses the receiver frontend's line protocol into pulses.
// Each line is "<level> <microseconds>" where the level is "s" (space, line
// idle/high) or "b" (burst, line active/low), e.g. "s 4500".
type SampleReader struct {
	scanner *bufio.Scanner
}

// NewSampleReader creates a sample reader over a connection or file
func NewSampleReader(r io.Reader) *SampleReader {
	return &SampleReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next sensed pulse. Blank lines are skipped; a line that
// does not parse is returned as an error so the caller can log and move on.
// Returns io.EOF when the stream ends.
func (s *SampleReader) Next() (nec.Pulse, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		return parseSampleLine(line)
	}

	if err := s.scanner.Err(); err != nil {
		return nec.Pulse{}, err
	}
	return nec.Pulse{}, io.EOF
}

// parseSampleLine parses one "<level> <microseconds>" line
func parseSampleLine(line string) (nec.Pulse, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nec.Pulse{}, fmt.Errorf("malformed sample line %q", line)
	}

	var isSpace bool
	switch fields[0] {
	case "s":
		isSpace = true
	case "b":
		isSpace = false
	default:
		return nec.Pulse{}, fmt.Errorf("unknown level %q in sample line %q", fields[0], line)
	}

	micros, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || micros < 0 {
		return nec.Pulse{}, fmt.Errorf("bad duration in sample line %q", line)
	}

	return nec.Pulse{
		Duration: time.Duration(micros) * time.Microsecond,
		IsSpace:  isSpace,
	}, nil
}
