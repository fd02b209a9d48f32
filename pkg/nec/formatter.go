// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import "fmt"

// FormatMessage formats a decoded message into a human-readable string
func FormatMessage(m *Message) string {
	timestamp := m.timestamp.Format("15:04:05.000")
	return fmt.Sprintf("[%s] NEC 0x%08X addr=0x%02X (~0x%02X) cmd=0x%02X (~0x%02X)",
		timestamp, m.raw, m.address, m.addressInverse, m.command, m.commandInverse)
}

// FormatErrorKind returns the human-readable name for an error kind
func FormatErrorKind(kind ErrorKind) string {
	switch kind {
	case ErrMalformedFraming:
		return "MALFORMED_FRAMING"
	case ErrWrongFrameLength:
		return "WRONG_FRAME_LENGTH"
	case ErrAlternationViolation:
		return "ALTERNATION_VIOLATION"
	case ErrInvalidBurst:
		return "INVALID_BURST"
	case ErrInvalidSpace:
		return "INVALID_SPACE"
	case ErrChecksumMismatch:
		return "CHECKSUM_MISMATCH"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(kind))
	}
}

// FormatDecodeError formats a decode error with its kind name
func FormatDecodeError(e *DecodeError) string {
	return fmt.Sprintf("%s: %s", FormatErrorKind(e.Kind), e.Message)
}

// FormatPulseClass returns the human-readable name for a pulse class
func FormatPulseClass(class PulseClass) string {
	switch class {
	case ClassSmallGap:
		return "SMALL_GAP"
	case ClassLargeGap:
		return "LARGE_GAP"
	case ClassNeither:
		return "NEITHER"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(class))
	}
}
