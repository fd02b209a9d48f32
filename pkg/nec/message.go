// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package nec

import (
	"fmt"
	"time"
)

// Message represents a decoded and checksum-validated NEC command word
type Message struct {
	raw            uint32
	address        uint8
	addressInverse uint8
	command        uint8
	commandInverse uint8
	timestamp      time.Time
}

// ValidateWord checks the inverse-checksum invariant of an assembled 32-bit
// word and splits it into its byte fields. Layout, MSB to LSB: address,
// inverse address, command, inverse command.
//
// Only the command pair is checksum-validated. The address pair is extracted
// as-is: receivers in the field accept codes whose upper bytes do not form an
// inverse pair (LG's 0x20DF prefix, for one), so rejecting them here would
// refuse remotes that work everywhere else.
func ValidateWord(raw uint32) (*Message, *DecodeError) {
	address := uint8(raw >> 24)
	addressInverse := uint8(raw >> 16)
	command := uint8(raw >> 8)
	commandInverse := uint8(raw)

	if command^commandInverse != 0xFF {
		return nil, &DecodeError{
			Kind: ErrChecksumMismatch,
			Message: fmt.Sprintf("command checksum mismatch: 0x%02X vs inverse 0x%02X",
				command, commandInverse),
			Details: map[string]interface{}{
				"field":           "command",
				"command":         command,
				"command_inverse": commandInverse,
			},
		}
	}

	return &Message{
		raw:            raw,
		address:        address,
		addressInverse: addressInverse,
		command:        command,
		commandInverse: commandInverse,
		timestamp:      time.Now(),
	}, nil
}

// Raw returns the full 32-bit command word
func (m *Message) Raw() uint32 {
	return m.raw
}

// Address returns the address byte
func (m *Message) Address() uint8 {
	return m.address
}

// AddressInverse returns the inverse-address byte
func (m *Message) AddressInverse() uint8 {
	return m.addressInverse
}

// Command returns the command byte
func (m *Message) Command() uint8 {
	return m.command
}

// CommandInverse returns the inverse-command byte
func (m *Message) CommandInverse() uint8 {
	return m.commandInverse
}

// Timestamp returns the message's decode timestamp
func (m *Message) Timestamp() time.Time {
	return m.timestamp
}
