// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pulsecraft/irscope/pkg/nec"
	"github.com/pulsecraft/irscope/pkg/remotes"
)

// Event log entry
type eventLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool // true for decode failures, false for decoded commands
}

// Last decoded command shown in the command panel
type lastCommand struct {
	timestamp time.Time
	raw       uint32
	address   uint8
	command   uint8
	device    string
	button    string
	known     bool
}

// diagnoseModel is the Bubble Tea model for the diagnose TUI
type diagnoseModel struct {
	connInfo      string
	statsInterval int
	showAll       bool
	tables        *remotes.Set
	stats         *nec.Statistics
	eventLog      []eventLogEntry
	maxLogEntries int
	lastCmd       *lastCommand
	done          bool
	width         int
	height        int
	quitting      bool
}

// Messages
type diagnoseTickMsg time.Time
type outcomeMsg frameOutcome
type connectionDoneMsg struct{}

func initialDiagnoseModel(connInfo string, statsInterval int, showAll bool, tables *remotes.Set) diagnoseModel {
	return diagnoseModel{
		connInfo:      connInfo,
		statsInterval: statsInterval,
		showAll:       showAll,
		tables:        tables,
		stats:         nec.NewStatistics(),
		eventLog:      make([]eventLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
}

func (m diagnoseModel) Init() tea.Cmd {
	return tea.Batch(
		diagnoseTickCmd(),
		tea.EnterAltScreen,
	)
}

func diagnoseTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return diagnoseTickMsg(t)
	})
}

func (m diagnoseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.stats.Reset()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case diagnoseTickMsg:
		// Update statistics rates
		m.stats.CalculateRates()
		return m, diagnoseTickCmd()

	case connectionDoneMsg:
		m.done = true
		m.addLogEntry("Connection closed", true)

	case outcomeMsg:
		m.stats.Update(msg.msg, msg.derr)

		if msg.derr != nil {
			m.addLogEntry(nec.FormatDecodeError(msg.derr), true)
		} else if msg.msg != nil {
			m.recordCommand(msg.msg)
			if m.showAll {
				m.addLogEntry(fmt.Sprintf("decoded 0x%08X", msg.msg.Raw()), false)
			}
		}
	}

	return m, nil
}

func (m *diagnoseModel) addLogEntry(message string, isError bool) {
	entry := eventLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	}
	m.eventLog = append(m.eventLog, entry)

	// Keep only last N entries
	if len(m.eventLog) > m.maxLogEntries {
		m.eventLog = m.eventLog[len(m.eventLog)-m.maxLogEntries:]
	}
}

// recordCommand updates the command panel from a decoded message
func (m *diagnoseModel) recordCommand(msg *nec.Message) {
	last := &lastCommand{
		timestamp: msg.Timestamp(),
		raw:       msg.Raw(),
		address:   msg.Address(),
		command:   msg.Command(),
	}
	if device, button, ok := m.tables.Lookup(msg.Raw()); ok {
		last.device = device
		last.button = button
		last.known = true
	}
	m.lastCmd = last
}

func (m diagnoseModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	// Header
	var s strings.Builder
	s.WriteString(titleStyle.Render("IRSCOPE - DIAGNOSE"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Mode: %s | 'r' resets stats, 'q' quits",
		m.connInfo, func() string {
			if m.showAll {
				return "All frames"
			}
			return "Failures only"
		}())))
	s.WriteString("\n\n")

	if m.done {
		s.WriteString(warningStyle.Render("Connection closed"))
		s.WriteString("\n\n")
	}

	// Statistics
	m.stats.CalculateRates()
	var validPercent, errorPercent float64
	if m.stats.TotalFrames > 0 {
		validPercent = float64(m.stats.ValidFrames) * 100.0 / float64(m.stats.TotalFrames)
		errorPercent = float64(m.stats.ErrorCount()) * 100.0 / float64(m.stats.TotalFrames)
	}

	statsContent := strings.Builder{}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Frames:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.TotalFrames)),
		labelStyle.Render("Valid:"), valueStyle.Render(fmt.Sprintf("%d (%.1f%%)", m.stats.ValidFrames, validPercent)),
		labelStyle.Render("Failed:"), errorStyle.Render(fmt.Sprintf("%d (%.1f%%)", m.stats.ErrorCount(), errorPercent)),
	))

	if m.stats.ErrorCount() > 0 {
		statsContent.WriteString(fmt.Sprintf("%s framing: %d  length: %d  alternation: %d  burst: %d  space: %d  checksum: %d\n",
			labelStyle.Render("By kind:"),
			m.stats.FramingErrors, m.stats.LengthErrors, m.stats.AlternationErrors,
			m.stats.BurstErrors, m.stats.SpaceErrors, m.stats.ChecksumErrors,
		))
	}

	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Frame Rate:"), valueStyle.Render(fmt.Sprintf("%.1f frames/s", m.stats.FrameRate)),
		labelStyle.Render("Error Rate:"), func() string {
			if m.stats.ErrorRate > 0 {
				return errorStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
			}
			return valueStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
		}(),
	))

	s.WriteString(boxStyle.Render(statsContent.String()))
	s.WriteString("\n\n")

	// Last command panel (only shown once something decoded)
	if m.lastCmd != nil {
		s.WriteString(labelStyle.Render("Last Command:"))
		s.WriteString("\n")

		cmdContent := strings.Builder{}
		cmdContent.WriteString(fmt.Sprintf("%s %s   %s 0x%02X   %s 0x%02X\n",
			labelStyle.Render("Code:"), valueStyle.Render(fmt.Sprintf("0x%08X", m.lastCmd.raw)),
			labelStyle.Render("Addr:"), m.lastCmd.address,
			labelStyle.Render("Cmd:"), m.lastCmd.command,
		))
		if m.lastCmd.known {
			cmdContent.WriteString(fmt.Sprintf("%s %s\n",
				labelStyle.Render("Button:"), valueStyle.Render(fmt.Sprintf("%s %s", m.lastCmd.device, m.lastCmd.button)),
			))
		} else {
			cmdContent.WriteString(warningStyle.Render("Not in any remote table\n"))
		}
		cmdContent.WriteString(headerStyle.Render(m.lastCmd.timestamp.Format("15:04:05.000")))

		s.WriteString(boxStyle.Render(cmdContent.String()))
		s.WriteString("\n\n")
	}

	// Event log
	s.WriteString(labelStyle.Render("Recent Events:"))
	s.WriteString("\n")

	// Calculate how many log entries we can show
	logHeight := m.height - 15 // Reserve space for header and stats
	if logHeight < 5 {
		logHeight = 5
	}

	logContent := strings.Builder{}
	startIdx := len(m.eventLog) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.eventLog) == 0 {
		logContent.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.eventLog); i++ {
			entry := m.eventLog[i]
			timestamp := entry.timestamp.Format("01/02/06 15:04:05.000")
			if entry.isError {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					errorStyle.Render("✗ "+entry.message),
				))
			} else {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					warningStyle.Render("ℹ "+entry.message),
				))
			}
		}
	}

	s.WriteString(boxStyle.Width(m.width - 4).Render(logContent.String()))

	return s.String()
}
