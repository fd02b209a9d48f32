// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pulsecraft/irscope/pkg/nec"
	"github.com/pulsecraft/irscope/pkg/remotes"
)

// Focus states
const (
	focusButtonList = iota
	focusNameInput
)

// learnedButton is one named code in the learned-button list
type learnedButton struct {
	name string
	code uint32
}

// Implement list.Item interface
func (b learnedButton) Title() string       { return b.name }
func (b learnedButton) Description() string { return fmt.Sprintf("0x%08X", b.code) }
func (b learnedButton) FilterValue() string { return b.name }

// learnModel is the Bubble Tea model for the learn TUI
type learnModel struct {
	connInfo   string
	outputPath string

	// Known codes (built-ins plus --table files), never re-learned
	known *remotes.Set

	// The table being built
	table      remotes.Table
	buttonList list.Model

	// Naming
	nameInput    textinput.Model
	pendingCode  *uint32
	focusedField int

	// UI state
	status   string
	saved    bool
	done     bool
	width    int
	height   int
	quitting bool
}

// Messages
type learnOutcomeMsg frameOutcome

func initialLearnModel(connInfo, device, outputPath string, known *remotes.Set) learnModel {
	ti := textinput.New()
	ti.Placeholder = "POWER_TOGGLE"
	ti.CharLimit = 40
	ti.Width = 24

	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 40, 12)
	l.Title = fmt.Sprintf("Learned: %s", device)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return learnModel{
		connInfo:     connInfo,
		outputPath:   outputPath,
		known:        known,
		table:        remotes.Table{Device: device},
		buttonList:   l,
		nameInput:    ti,
		focusedField: focusButtonList,
		status:       "Point a remote at the receiver and press a button",
	}
}

func (m learnModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m learnModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			// Inside the input "q" is just a letter
			if m.focusedField != focusNameInput {
				m.quitting = true
				return m, tea.Quit
			}

		case "s":
			if m.focusedField != focusNameInput {
				return m.save(), nil
			}

		case "tab":
			if m.focusedField == focusButtonList {
				m.focusedField = focusNameInput
				cmds = append(cmds, m.nameInput.Focus())
			} else {
				m.focusedField = focusButtonList
				m.nameInput.Blur()
			}
			return m, tea.Batch(cmds...)

		case "enter":
			if m.focusedField == focusNameInput {
				return m.commitName(), nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.buttonList.SetSize(msg.Width-6, msg.Height-14)

	case connectionDoneMsg:
		m.done = true
		m.status = "Connection closed"

	case learnOutcomeMsg:
		if msg.derr != nil {
			m.status = nec.FormatDecodeError(msg.derr)
			break
		}
		if msg.msg != nil {
			m = m.observeCode(msg.msg)
			if m.pendingCode != nil && m.focusedField != focusNameInput {
				m.focusedField = focusNameInput
				cmds = append(cmds, m.nameInput.Focus())
			}
		}
	}

	// Route remaining input to the focused component
	var cmd tea.Cmd
	switch m.focusedField {
	case focusButtonList:
		m.buttonList, cmd = m.buttonList.Update(msg)
	case focusNameInput:
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// observeCode handles one decoded command word
func (m learnModel) observeCode(msg *nec.Message) learnModel {
	code := msg.Raw()

	if device, button, ok := m.known.Lookup(code); ok {
		m.status = fmt.Sprintf("0x%08X already known: %s %s", code, device, button)
		return m
	}
	if name, ok := m.table.Lookup(code); ok {
		m.status = fmt.Sprintf("0x%08X already learned as %s", code, name)
		return m
	}

	m.pendingCode = &code
	m.status = fmt.Sprintf("New code 0x%08X, type a name and press enter", code)
	return m
}

// commitName stores the typed name for the pending code
func (m learnModel) commitName() learnModel {
	if m.pendingCode == nil {
		m.status = "No pending code to name"
		return m
	}

	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		m.status = "Name must not be empty"
		return m
	}

	button := remotes.Button{Name: name, Code: *m.pendingCode}
	m.table.Buttons = append(m.table.Buttons, button)
	m.buttonList.InsertItem(len(m.table.Buttons), learnedButton{name: name, code: button.Code})

	m.status = fmt.Sprintf("Learned %s = 0x%08X", name, button.Code)
	m.pendingCode = nil
	m.saved = false
	m.nameInput.SetValue("")
	m.nameInput.Blur()
	m.focusedField = focusButtonList
	return m
}

// save writes the learned table to the output file
func (m learnModel) save() learnModel {
	if len(m.table.Buttons) == 0 {
		m.status = "Nothing learned yet"
		return m
	}
	if err := m.table.Save(m.outputPath); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
		return m
	}
	m.saved = true
	m.status = fmt.Sprintf("Saved %d buttons to %s at %s",
		len(m.table.Buttons), m.outputPath, time.Now().Format("15:04:05"))
	return m
}

func (m learnModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

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

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("IRSCOPE - LEARN"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Output: %s | tab, enter, 's' saves, 'q' quits",
		m.connInfo, m.outputPath)))
	s.WriteString("\n\n")

	s.WriteString(m.buttonList.View())
	s.WriteString("\n\n")

	if m.pendingCode != nil {
		s.WriteString(labelStyle.Render(fmt.Sprintf("Name for 0x%08X:", *m.pendingCode)))
		s.WriteString("\n")
		s.WriteString(m.nameInput.View())
		s.WriteString("\n\n")
	}

	s.WriteString(boxStyle.Render(statusStyle.Render(m.status)))
	s.WriteString("\n")

	if !m.saved && len(m.table.Buttons) > 0 {
		s.WriteString(headerStyle.Render("Unsaved changes"))
		s.WriteString("\n")
	}

	return s.String()
}
