package store

import (
	"context"

	"github.com/MKhiriev/dingus-admin/models"
)

// AssignmentStorage keeps the latest accepted device assignment set.
type AssignmentStorage interface {
	// ReplaceAssignments swaps the stored set for rows.
	ReplaceAssignments(ctx context.Context, rows []models.DeviceAssignment) error
	// ListAssignments returns a copy of the stored set in submission order.
	ListAssignments(ctx context.Context) ([]models.DeviceAssignment, error)
}

// ConfigStorage keeps the latest accepted configuration form.
type ConfigStorage interface {
	SaveConfig(ctx context.Context, form models.ConfigForm) error
	// GetConfig returns ErrConfigNotFound until a form was saved.
	GetConfig(ctx context.Context) (models.ConfigForm, error)
}
