// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors
//
// Irscope - NEC Infrared Signal Analyzer
//
// A CLI tool for decoding NEC infrared remote transmissions into 32-bit
// command words and resolving them to named remote buttons.

package main

import (
	"os"

	"github.com/pulsecraft/irscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
