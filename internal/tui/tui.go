// Package tui is the interactive terminal front end of the admin client,
// built on Bubble Tea.
//
// Pages: a menu, the device assignment table and the server configuration
// form. Submission outcomes arrive through [ProgramNotifier] and are shown as
// a toast that disappears after the configured duration or on esc/enter.
package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	notifier  *ProgramNotifier
	inventory models.Inventory
	buildInfo models.AppBuildInfo

	toastDuration time.Duration

	logger *logger.Logger
}

func New(
	services *service.ClientServices,
	notifier *ProgramNotifier,
	inventory models.Inventory,
	buildInfo models.AppBuildInfo,
	toastDuration time.Duration,
	log *logger.Logger,
) *TUI {
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		services:      services,
		notifier:      notifier,
		inventory:     inventory,
		buildInfo:     buildInfo,
		toastDuration: toastDuration,
		logger:        log,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
// Returns ErrUserQuit when the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.notifier.attach(p)
	defer t.notifier.detach()

	t.logger.Info().Int("devices", len(t.inventory.Devices)).Msg("terminal UI started")

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:    NewMenuModel(),
		pageDevices: NewDevicesModel(ctx, t.services.AssignmentService, t.inventory.Assignments(), t.inventory.Trainings),
		pageConfig:  NewConfigModel(ctx, t.services.ConfigService),
	}

	return NewRootModel(pages, pageMenu, t.buildInfo, newToastModel(t.toastDuration))
}
