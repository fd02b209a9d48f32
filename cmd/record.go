// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulsecraft/irscope/pkg/nec"
)

var (
	recordOutput string
	recordDevice string
	recordNote   string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record raw receiver samples to a capture file",
	Long: `Record the raw sample stream from the receiver into a CBOR capture file.

Captures store every sensed interval verbatim, so a recording replays through
the decoder exactly as the live signal did. Use "replay" to decode a capture
offline. Recording stops on Ctrl+C or when the connection closes.

Supports both serial and WebSocket connections.`,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().StringVarP(&recordOutput, "output", "o", "capture.cbor", "Output capture file")
	recordCmd.Flags().StringVarP(&recordDevice, "device", "d", "", "Device name stored in the capture")
	recordCmd.Flags().StringVar(&recordNote, "note", "", "Free-form note stored in the capture")
}

func runRecord(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Irscope - Sample Recorder\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Output: %s\n", recordOutput)
	fmt.Printf("Press Ctrl+C to stop recording\n\n")

	capture := &nec.Capture{
		Device:     recordDevice,
		Note:       recordNote,
		CapturedAt: time.Now(),
	}

	// Reader goroutine; the main loop owns the capture buffer
	pulses := make(chan nec.Pulse, 64)
	go func() {
		reader := NewSampleReader(conn)
		for {
			pulse, err := reader.Next()
			if err == io.EOF || err == ErrConnectionClosed {
				close(pulses)
				return
			}
			if err != nil {
				log.Printf("Read error: %v", err)
				continue
			}
			pulses <- pulse
		}
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt)

	recording := true
	for recording {
		select {
		case pulse, ok := <-pulses:
			if !ok {
				log.Print("Connection closed")
				recording = false
				break
			}
			capture.Samples = append(capture.Samples, nec.Capturing(pulse))

		case <-signalChannel:
			recording = false
		}
	}

	if len(capture.Samples) == 0 {
		return fmt.Errorf("no samples recorded")
	}

	f, err := os.Create(recordOutput)
	if err != nil {
		return fmt.Errorf("failed to create capture file: %v", err)
	}
	defer f.Close()

	if err := nec.WriteCapture(f, capture); err != nil {
		return err
	}

	fmt.Printf("\nRecorded %d samples to %s\n", len(capture.Samples), recordOutput)
	return nil
}
