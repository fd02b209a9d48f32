// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	learnOutput string
	learnDevice string
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Interactive TUI for naming unknown remote codes",
	Long: `Build a remote table by pressing buttons on an unknown remote.

Each decoded code that is not already in a table is offered for naming: type
a button name and press enter to add it. Codes already known (built-in tables
or --table files) are logged but not offered again.

Keys:
  tab     switch between the learned-button list and the name input
  enter   commit the typed name for the pending code
  s       save the table to the output file
  q       quit (prompts nothing; save first)

The saved YAML file can be fed back to any command via --table.

Supports both serial and WebSocket connections.`,
	RunE: runLearn,
}

func init() {
	rootCmd.AddCommand(learnCmd)
	learnCmd.Flags().StringVarP(&learnOutput, "output", "o", "learned.yaml", "Output YAML table file")
	learnCmd.Flags().StringVarP(&learnDevice, "device", "d", "New Remote", "Device name for the learned table")
}

func runLearn(cmd *cobra.Command, args []string) error {
	tables, err := loadRemoteTables()
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	m := initialLearnModel(connInfo, learnDevice, learnOutput, tables)
	p := tea.NewProgram(m)

	go func() {
		outcomes := make(chan frameOutcome, 10)
		go readOutcomes(conn, outcomes)
		for outcome := range outcomes {
			p.Send(learnOutcomeMsg(outcome))
		}
		p.Send(connectionDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}

	return nil
}
