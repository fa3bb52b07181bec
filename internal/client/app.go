package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/dingus-admin/internal/adapter"
	"github.com/MKhiriev/dingus-admin/internal/config"
	"github.com/MKhiriev/dingus-admin/internal/inventory"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/notify"
	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/internal/tui"
	"github.com/MKhiriev/dingus-admin/models"
)

type App struct {
	services  *service.ClientServices
	tui       *tui.TUI
	inventory models.Inventory

	logger *logger.Logger
}

// NewApp wires the client from cfg. In batch mode outcomes are written to
// stderr and no terminal UI is created.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	inv, err := loadInventory(cfg.App.InventoryPath)
	if err != nil {
		return nil, err
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	if cfg.App.Batch {
		services := service.NewClientServices(serverAdapter, notify.NewWriterNotifier(os.Stderr), log)
		return newApp(services, nil, inv, log), nil
	}

	programNotifier := tui.NewProgramNotifier()
	services := service.NewClientServices(serverAdapter, notify.WithFallback(programNotifier, nil), log)
	ui := tui.New(services, programNotifier, inv, buildInfo, cfg.App.ToastDuration, log)

	return newApp(services, ui, inv, log), nil
}

func newApp(services *service.ClientServices, ui *tui.TUI, inv models.Inventory, log *logger.Logger) *App {
	return &App{
		services:  services,
		tui:       ui,
		inventory: inv,
		logger:    log,
	}
}

// Run blocks until the user quits the UI or, in batch mode, until the
// inventory assignments have been submitted once.
func (a *App) Run(ctx context.Context) error {
	if a.tui == nil {
		return a.runBatch(ctx)
	}

	err := a.tui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	return err
}

func (a *App) runBatch(ctx context.Context) error {
	rows := a.inventory.Assignments()
	a.logger.Info().Int("devices", len(rows)).Msg("batch submission started")

	outcome, err := a.services.AssignmentService.Submit(ctx, rows)
	if err != nil {
		return fmt.Errorf("batch submission: %w", err)
	}
	if !outcome.OK() {
		return fmt.Errorf("%w: %s: %s", ErrBatchRejected, outcome.Kind, outcome.Message)
	}
	return nil
}

func loadInventory(path string) (models.Inventory, error) {
	if path == "" {
		return models.Inventory{}, nil
	}

	inv, err := inventory.Load(path)
	if err != nil {
		return models.Inventory{}, fmt.Errorf("load inventory: %w", err)
	}
	return inv, nil
}
