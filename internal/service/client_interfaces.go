package service

import (
	"context"

	"github.com/MKhiriev/dingus-admin/models"
)

// SubmitState is the position of a form in its submit interaction.
type SubmitState int32

const (
	StateIdle SubmitState = iota
	StateValidating
	StateSubmitting
)

func (s SubmitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// ClientAssignmentService submits the device-to-training-label table.
type ClientAssignmentService interface {
	// Submit validates rows in display order and, if they are valid, sends
	// them to the server in one request. Exactly one notification is shown
	// and the same outcome is returned.
	//
	// If another Submit is still running it returns ErrSubmitInProgress
	// without sending anything or notifying.
	Submit(ctx context.Context, rows []models.DeviceAssignment) (models.Outcome, error)

	// State reports where the current submit interaction is.
	State() SubmitState
}

// ClientConfigService submits the server configuration form. It follows the
// same contract as ClientAssignmentService.
type ClientConfigService interface {
	Submit(ctx context.Context, form models.ConfigForm) (models.Outcome, error)
	State() SubmitState
}
