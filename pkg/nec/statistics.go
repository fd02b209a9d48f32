// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import (
	"fmt"
	"time"
)

// Statistics tracks frame outcomes and error rates
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	TotalFrames       uint64
	ValidFrames       uint64
	FramingErrors     uint64
	LengthErrors      uint64
	AlternationErrors uint64
	BurstErrors       uint64
	SpaceErrors       uint64
	ChecksumErrors    uint64

	// Rates (calculated)
	FrameRate float64 // frames/sec
	ErrorRate float64 // errors/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update updates statistics from one finalized frame's outcome
func (s *Statistics) Update(msg *Message, decodeErr *DecodeError) {
	s.TotalFrames++
	s.LastUpdateTime = time.Now()

	if decodeErr == nil {
		if msg != nil {
			s.ValidFrames++
		}
		return
	}

	switch decodeErr.Kind {
	case ErrMalformedFraming:
		s.FramingErrors++
	case ErrWrongFrameLength:
		s.LengthErrors++
	case ErrAlternationViolation:
		s.AlternationErrors++
	case ErrInvalidBurst:
		s.BurstErrors++
	case ErrInvalidSpace:
		s.SpaceErrors++
	case ErrChecksumMismatch:
		s.ChecksumErrors++
	}
}

// ErrorCount returns the total number of failed frames
func (s *Statistics) ErrorCount() uint64 {
	return s.FramingErrors + s.LengthErrors + s.AlternationErrors +
		s.BurstErrors + s.SpaceErrors + s.ChecksumErrors
}

// CalculateRates calculates frame and error rates
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.FrameRate = float64(s.TotalFrames) / elapsed
		s.ErrorRate = float64(s.ErrorCount()) / elapsed
	}
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	s.CalculateRates()

	var validPercent, errorPercent float64
	if s.TotalFrames > 0 {
		validPercent = float64(s.ValidFrames) * 100.0 / float64(s.TotalFrames)
		errorPercent = float64(s.ErrorCount()) * 100.0 / float64(s.TotalFrames)
	}

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Total Frames:    %8d\n", s.TotalFrames)
	result += fmt.Sprintf("Valid Frames:    %8d (%.1f%%)\n", s.ValidFrames, validPercent)

	if s.ErrorCount() > 0 {
		result += fmt.Sprintf("Failed Frames:   %8d (%.1f%%)\n", s.ErrorCount(), errorPercent)
		if s.FramingErrors > 0 {
			result += fmt.Sprintf("  Malformed Framing:  %5d\n", s.FramingErrors)
		}
		if s.LengthErrors > 0 {
			result += fmt.Sprintf("  Wrong Length:       %5d\n", s.LengthErrors)
		}
		if s.AlternationErrors > 0 {
			result += fmt.Sprintf("  Alternation:        %5d\n", s.AlternationErrors)
		}
		if s.BurstErrors > 0 {
			result += fmt.Sprintf("  Invalid Bursts:     %5d\n", s.BurstErrors)
		}
		if s.SpaceErrors > 0 {
			result += fmt.Sprintf("  Invalid Spaces:     %5d\n", s.SpaceErrors)
		}
		if s.ChecksumErrors > 0 {
			result += fmt.Sprintf("  Checksum Mismatch:  %5d\n", s.ChecksumErrors)
		}
	}

	result += fmt.Sprintf("Frame Rate:      %8.1f frames/sec\n", s.FrameRate)
	result += fmt.Sprintf("Error Rate:      %8.1f errors/sec\n", s.ErrorRate)
	result += "================================\n"

	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	now := time.Now()
	s.StartTime = now
	s.LastUpdateTime = now
	s.TotalFrames = 0
	s.ValidFrames = 0
	s.FramingErrors = 0
	s.LengthErrors = 0
	s.AlternationErrors = 0
	s.BurstErrors = 0
	s.SpaceErrors = 0
	s.ChecksumErrors = 0
	s.FrameRate = 0
	s.ErrorRate = 0
}
