// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pulsecraft/irscope/pkg/nec"
	"github.com/pulsecraft/irscope/pkg/remotes"
)

var (
	showAll       bool
	statsInterval int
	useTUI        bool
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Analyze decode failures and signal quality",
	Long: `Track frame decode failures and signal quality with statistics.

This command runs every finalized frame through the decode pipeline and
classifies the failures:
  - Malformed framing and wrong frame lengths (truncated or repeat frames)
  - Space/burst alternation violations (receiver glitches)
  - Pulses outside both tolerance windows (weak signal, interference)
  - Command checksum mismatches (corrupted transmissions)

By default, only failures are displayed. Use --show-all to display decoded
commands too.

Frames are analyzed in real-time, with failures highlighted immediately and
periodic statistics summaries displayed at configurable intervals.`,
	RunE: runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
	diagnoseCmd.Flags().BoolVar(&showAll, "show-all", false, "Show all frames (not just failures)")
	diagnoseCmd.Flags().IntVar(&statsInterval, "stats-interval", 10, "Statistics update interval (seconds)")
	diagnoseCmd.Flags().BoolVar(&useTUI, "tui", true, "Use terminal UI (false for text mode)")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	tables, err := loadRemoteTables()
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	if useTUI {
		return runDiagnoseTUI(conn, connInfo, tables)
	}
	return runDiagnoseText(conn, connInfo, tables)
}

// printDecodeError prints a decode failure in highlighted format
func printDecodeError(derr *nec.DecodeError) {
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Printf("[%s] \033[1;31m%s:\033[0m %s\n", timestamp, nec.FormatErrorKind(derr.Kind), derr.Message)
	fmt.Printf("  >>> FRAME REJECTED <<<\n\n")
}

// frameOutcome carries one finalized frame outcome from the reader goroutine
type frameOutcome struct {
	msg  *nec.Message
	derr *nec.DecodeError
}

// readOutcomes feeds connection samples through an accumulator and delivers
// frame outcomes on a channel until the connection ends
func readOutcomes(conn Connection, outcomes chan<- frameOutcome) {
	accumulator := nec.NewAccumulator()
	reader := NewSampleReader(conn)

	for {
		pulse, err := reader.Next()
		if err == io.EOF || err == ErrConnectionClosed {
			close(outcomes)
			return
		}
		if err != nil {
			log.Printf("Read error: %v", err)
			continue
		}

		msg, derr := accumulator.Feed(pulse)
		if msg != nil || derr != nil {
			outcomes <- frameOutcome{msg: msg, derr: derr}
		}
	}
}

// runDiagnoseText runs diagnosis in text mode (original behavior)
func runDiagnoseText(conn Connection, connInfo string, tables *remotes.Set) error {
	fmt.Printf("Irscope - Diagnose Mode\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Statistics interval: %d seconds\n", statsInterval)
	if showAll {
		fmt.Printf("Mode: All frames\n")
	} else {
		fmt.Printf("Mode: Failures only\n")
	}
	fmt.Printf("Press Ctrl+C to exit\n\n")

	stats := nec.NewStatistics()

	statsTicker := time.NewTicker(time.Duration(statsInterval) * time.Second)
	defer statsTicker.Stop()

	outcomes := make(chan frameOutcome, 10)
	go readOutcomes(conn, outcomes)

	for {
		select {
		case outcome, ok := <-outcomes:
			if !ok {
				fmt.Println()
				fmt.Print(stats.String())
				return nil
			}

			stats.Update(outcome.msg, outcome.derr)

			if outcome.derr != nil {
				printDecodeError(outcome.derr)
			} else if showAll {
				fmt.Println(formatWithButton(tables, outcome.msg))
			}

		case <-statsTicker.C:
			fmt.Println()
			fmt.Print(stats.String())
			fmt.Println()
		}
	}
}

// runDiagnoseTUI runs diagnosis in TUI mode
func runDiagnoseTUI(conn Connection, connInfo string, tables *remotes.Set) error {
	m := initialDiagnoseModel(connInfo, statsInterval, showAll, tables)
	p := tea.NewProgram(m)

	// Reader goroutine pushes outcomes into the TUI
	go func() {
		outcomes := make(chan frameOutcome, 10)
		go readOutcomes(conn, outcomes)
		for outcome := range outcomes {
			p.Send(outcomeMsg(outcome))
		}
		p.Send(connectionDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}

	return nil
}
