package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/dingus-admin/internal/notify"
	"github.com/MKhiriev/dingus-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramNotifier implements notify.Notifier by posting a toast into a
// running Bubble Tea program. It is created before the program exists and
// attached once the program starts.
type ProgramNotifier struct {
	mu      sync.RWMutex
	program *tea.Program
}

func NewProgramNotifier() *ProgramNotifier {
	return &ProgramNotifier{}
}

func (n *ProgramNotifier) attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

func (n *ProgramNotifier) detach() {
	n.attach(nil)
}

// Notify returns notify.ErrDisplayUnavailable while no program is attached.
func (n *ProgramNotifier) Notify(ctx context.Context, outcome models.Outcome) error {
	n.mu.RLock()
	p := n.program
	n.mu.RUnlock()

	if p == nil {
		return notify.ErrDisplayUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.Send(toastMsg{outcome: outcome})
	return nil
}
