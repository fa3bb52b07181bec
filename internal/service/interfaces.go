package service

import (
	"context"

	"github.com/MKhiriev/dingus-admin/models"
)

// AssignmentService is the receiver side of device assignment submissions.
type AssignmentService interface {
	// UpdateAssignments validates rows with the same rules the client uses
	// and replaces the stored set. Validation failures wrap the validator
	// sentinels.
	UpdateAssignments(ctx context.Context, rows []models.DeviceAssignment) error
	ListAssignments(ctx context.Context) ([]models.DeviceAssignment, error)
}

// ConfigService is the receiver side of configuration submissions.
type ConfigService interface {
	UpdateConfig(ctx context.Context, form models.ConfigForm) error
	GetConfig(ctx context.Context) (models.ConfigForm, error)
}
