// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pulsecraft/irscope/pkg/nec"
)

var replayQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <capture-file>",
	Short: "Decode a recorded capture file",
	Long: `Run a recorded capture file through the full decode pipeline.

Every finalized frame in the capture is decoded and printed, followed by a
statistics summary. No hardware is needed.

Exit codes:
  0 - At least one frame decoded to a valid NEC command
  1 - No frame in the capture decoded successfully`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "Only print the statistics summary")
}

func runReplay(cmd *cobra.Command, args []string) error {
	tables, err := loadRemoteTables()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open capture file: %v", err)
	}
	defer f.Close()

	capture, err := nec.ReadCapture(f)
	if err != nil {
		return err
	}

	if !replayQuiet {
		fmt.Printf("Irscope - Capture Replay\n")
		fmt.Printf("File: %s (%d samples)\n", args[0], len(capture.Samples))
		if capture.Device != "" {
			fmt.Printf("Device: %s\n", capture.Device)
		}
		if capture.Note != "" {
			fmt.Printf("Note: %s\n", capture.Note)
		}
		fmt.Printf("Captured: %s\n\n", capture.CapturedAt.Format("2006-01-02 15:04:05"))
	}

	accumulator := nec.NewAccumulator()
	stats := nec.NewStatistics()

	decode := func(msg *nec.Message, derr *nec.DecodeError) {
		if msg == nil && derr == nil {
			return
		}
		stats.Update(msg, derr)
		if replayQuiet {
			return
		}
		if derr != nil {
			fmt.Printf("[ERROR] %s\n", nec.FormatDecodeError(derr))
		} else {
			fmt.Println(formatWithButton(tables, msg))
		}
	}

	for _, sample := range capture.Samples {
		decode(accumulator.Feed(sample.Pulse()))
	}

	// A capture that ends mid-frame still owes its last frame an outcome
	if accumulator.Pending() > 0 {
		decode(accumulator.Feed(nec.Pulse{Duration: nec.MaxPulseRead + 1}))
	}

	fmt.Println()
	fmt.Print(stats.String())

	if stats.ValidFrames == 0 {
		os.Exit(1)
	}
	return nil
}
