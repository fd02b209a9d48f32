// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"github.com/pulsecraft/irscope/pkg/remotes"
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Remote table flags
	tableFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "irscope",
	Short: "NEC Infrared Signal Analyzer",
	Long: `Irscope - A CLI tool for decoding and analyzing NEC infrared remote signals.

Reads timed level intervals from an IR receiver frontend, decodes them into
32-bit NEC command words, and resolves known codes to remote button names.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 115200]
  WebSocket: --url ws://host/path [--username user]

The receiver frontend reports one interval per line: "s <microseconds>" for a
space (line idle) or "b <microseconds>" for a burst (line active). Intervals
longer than 65 ms mark the gap between transmissions.

For WebSocket authentication, the password is read from the IRSCOPE_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version: "1.2.0",
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	// Extra remote tables on top of the built-ins
	rootCmd.PersistentFlags().StringSliceVar(&tableFiles, "table", nil, "Additional remote table YAML file (repeatable)")
}

// loadRemoteTables builds the lookup set from built-ins plus any --table files
func loadRemoteTables() (*remotes.Set, error) {
	set := remotes.Builtin()
	for _, path := range tableFiles {
		if err := set.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
