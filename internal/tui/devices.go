// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	unassignedLabel = "(select training)"
	statusLifetime  = 2 * time.Second
)

// DevicesModel is the device management table. Each row shows a registered
// device and the training label selected for it; left/right cycles through
// the known labels and enter submits the whole table.
//
// Rows reported by a validation failure are marked until the next submit.
type DevicesModel struct {
	ctx context.Context
	svc service.ClientAssignmentService

	rows    []models.DeviceAssignment
	options []string // "" first, meaning unassigned
	cursor  int

	invalid    map[int]bool
	submitting bool
	status     string

	writeClipboard func(string) error
}

// NewDevicesModel creates the table from the initial rows and the labels an
// operator may choose.
func NewDevicesModel(ctx context.Context, svc service.ClientAssignmentService, rows []models.DeviceAssignment, labels []string) *DevicesModel {
	options := make([]string, 0, len(labels)+1)
	options = append(options, "")
	for _, l := range labels {
		if l != "" && !slices.Contains(options, l) {
			options = append(options, l)
		}
	}

	return &DevicesModel{
		ctx:            ctx,
		svc:            svc,
		rows:           slices.Clone(rows),
		options:        options,
		invalid:        map[int]bool{},
		writeClipboard: clipboard.WriteAll,
	}
}

func (m *DevicesModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Handled messages:
//   - assignmentsSubmittedMsg: clears submitting state and marks invalid rows.
//   - copiedMsg / clearStatusMsg: clipboard status line.
//   - up/down  : move the cursor.
//   - left/right: cycle the label of the selected row.
//   - x        : clear the label of the selected row.
//   - c        : copy the MAC address of the selected row.
//   - enter    : submit all rows.
//   - esc      : back to the menu.
func (m *DevicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assignmentsSubmittedMsg:
		if errors.Is(msg.err, service.ErrSubmitInProgress) {
			return m, nil
		}
		m.submitting = false
		m.invalid = map[int]bool{}
		if msg.outcome.Kind == models.OutcomeValidationFailure {
			for _, i := range msg.outcome.Rows {
				m.invalid[i] = true
			}
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = humanizeClipboardError(msg.err)
		} else {
			m.status = msg.what + " copied"
		}
		return m, cmdClearStatus(pageDevices)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.right):
		m.cycleLabel(1)
	case key.Matches(keyMsg, keys.left):
		m.cycleLabel(-1)
	case key.Matches(keyMsg, keys.clear):
		if m.hasRows() {
			m.rows[m.cursor].TrainingLabel = ""
		}
	case key.Matches(keyMsg, keys.copy):
		if m.hasRows() {
			return m, m.cmdCopy("MAC address", m.rows[m.cursor].MACAddress)
		}
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdSubmit()
	}

	return m, nil
}

func (m *DevicesModel) View() string {
	var b strings.Builder

	ipWidth, macWidth := len("IP address"), len("MAC address")
	for _, row := range m.rows {
		ipWidth = max(ipWidth, len(row.IPAddress))
		macWidth = max(macWidth, len(row.MACAddress))
	}

	b.WriteString(fmt.Sprintf("    %-*s │ %-*s │ %s\n", ipWidth, "IP address", macWidth, "MAC address", "Training"))
	b.WriteString(strings.Repeat("─", ipWidth+4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", macWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 24))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString("    no devices registered\n")
	}

	for i, row := range m.rows {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		marker := " "
		if m.invalid[i] {
			marker = "!"
		}

		label := row.TrainingLabel
		if strings.TrimSpace(label) == "" {
			label = unassignedLabel
		}

		line := fmt.Sprintf("%s %s %-*s │ %-*s │ ‹ %s ›", cursor, marker, ipWidth, row.IPAddress, macWidth, row.MACAddress, fitText(label, 40))
		switch {
		case m.invalid[i]:
			line = invalidRowStyle.Render(line)
		case i == m.cursor:
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	} else {
		b.WriteString("\n[Submit]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("DEVICE ASSIGNMENTS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: device │ ←/→: training │ x: clear │ c: copy MAC │ enter: submit │ esc: back")
}

func (m *DevicesModel) hasRows() bool {
	return m.cursor >= 0 && m.cursor < len(m.rows)
}

func (m *DevicesModel) cycleLabel(step int) {
	if !m.hasRows() || len(m.options) == 0 {
		return
	}

	current := slices.Index(m.options, strings.TrimSpace(m.rows[m.cursor].TrainingLabel))
	if current < 0 {
		current = 0
	}
	next := (current + step + len(m.options)) % len(m.options)
	m.rows[m.cursor].TrainingLabel = m.options[next]
}

func (m *DevicesModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	rows := slices.Clone(m.rows)

	return func() tea.Msg {
		outcome, err := svc.Submit(ctx, rows)
		return assignmentsSubmittedMsg{outcome: outcome, err: err}
	}
}

func (m *DevicesModel) cmdCopy(what, text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copiedMsg{page: pageDevices, what: what, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{page: pageDevices, what: what}
	}
}

func cmdClearStatus(page string) tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{page: page}
	})
}
