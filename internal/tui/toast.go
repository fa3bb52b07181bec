package tui

import (
	"time"

	"github.com/MKhiriev/dingus-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// toastModel shows one outcome at a time. A new outcome replaces the current
// one and restarts the dismissal timer.
type toastModel struct {
	duration time.Duration

	id      int
	visible bool
	outcome models.Outcome
}

func newToastModel(duration time.Duration) toastModel {
	return toastModel{duration: duration}
}

func (t toastModel) show(outcome models.Outcome) (toastModel, tea.Cmd) {
	t.id++
	t.visible = true
	t.outcome = outcome

	id := t.id
	return t, tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (t toastModel) expire(msg toastExpiredMsg) toastModel {
	if msg.id == t.id {
		t.visible = false
	}
	return t
}

func (t toastModel) dismiss() toastModel {
	t.visible = false
	return t
}

func (t toastModel) View() string {
	if !t.visible {
		return ""
	}

	if t.outcome.OK() {
		return toastSuccessStyle.Render("✓ " + t.outcome.Message)
	}
	return toastFailureStyle.Render("✗ " + t.outcome.Message)
}
