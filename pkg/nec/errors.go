// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

// ErrorKind represents the different kinds of frame decode failures
type ErrorKind int

const (
	ErrMalformedFraming ErrorKind = iota
	ErrWrongFrameLength
	ErrAlternationViolation
	ErrInvalidBurst
	ErrInvalidSpace
	ErrChecksumMismatch
)

// DecodeError represents a frame decode failure. Every failure is local to
// one frame: the accumulator resets and keeps running regardless of kind.
type DecodeError struct {
	Kind    ErrorKind
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return e.Message
}
