// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/pulsecraft/irscope/pkg/nec"
	"github.com/pulsecraft/irscope/pkg/remotes"
	"github.com/spf13/cobra"
)

var metricsListen string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Decode and display NEC commands as they arrive",
	Long: `Continuously decode receiver samples and display each NEC command.

Every finalized frame is shown with its timestamp, raw 32-bit word, and byte
fields. Codes found in the remote tables are resolved to device and button
names; decode failures are shown inline with their error kind.

With --metrics-listen, Prometheus counters for decoded frames and per-kind
decode errors are exposed on /metrics.

Supports both serial and WebSocket connections.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&metricsListen, "metrics-listen", "", "Address for the Prometheus /metrics endpoint (e.g. :9312)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	tables, err := loadRemoteTables()
	if err != nil {
		return err
	}

	// Open connection (serial or WebSocket)
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	var metrics *decodeMetrics
	if metricsListen != "" {
		metrics = newDecodeMetrics()
		serveMetrics(metricsListen)
	}

	fmt.Printf("Irscope - NEC Command Watch\n")
	fmt.Printf("Connection: %s\n", connInfo)
	if metricsListen != "" {
		fmt.Printf("Metrics: http://%s/metrics\n", metricsListen)
	}
	fmt.Printf("Press Ctrl+C to exit\n\n")

	accumulator := nec.NewAccumulator()
	reader := NewSampleReader(conn)

	for {
		pulse, err := reader.Next()
		if err == io.EOF {
			log.Printf("Connection closed")
			return nil
		}
		if err == ErrConnectionClosed {
			log.Printf("Connection closed")
			return nil
		}
		if err != nil {
			log.Printf("Read error: %v", err)
			continue
		}

		if metrics != nil {
			metrics.SamplesRead.Inc()
		}

		msg, derr := accumulator.Feed(pulse)
		if metrics != nil {
			metrics.observe(msg, derr)
		}

		if derr != nil {
			fmt.Printf("[ERROR] %s\n", nec.FormatDecodeError(derr))
			continue
		}
		if msg != nil {
			fmt.Println(formatWithButton(tables, msg))
		}
	}
}

// formatWithButton formats a message, appending the device and button names
// when the code is in the tables
func formatWithButton(tables *remotes.Set, msg *nec.Message) string {
	line := nec.FormatMessage(msg)
	if device, button, ok := tables.Lookup(msg.Raw()); ok {
		line += fmt.Sprintf("  %s %s", device, button)
	}
	return line
}
