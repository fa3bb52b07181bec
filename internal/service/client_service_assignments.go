package service

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/dingus-admin/internal/adapter"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/notify"
	"github.com/MKhiriev/dingus-admin/internal/validators"
	"github.com/MKhiriev/dingus-admin/models"
)

type clientAssignmentService struct {
	*formSubmitter[[]models.DeviceAssignment]
}

// NewClientAssignmentService returns a ClientAssignmentService that checks
// rows with validators.AssignmentValidator and sends them through
// serverAdapter.
func NewClientAssignmentService(serverAdapter adapter.ServerAdapter, notifier notify.Notifier, log *logger.Logger) ClientAssignmentService {
	send := func(ctx context.Context, rows []models.DeviceAssignment) error {
		return serverAdapter.UpdateDeviceAssignments(ctx, assignmentPayload(rows))
	}

	return &clientAssignmentService{
		formSubmitter: newFormSubmitter("device_assignments", validators.NewAssignmentValidator(), send, notifier, assignmentMessages, log),
	}
}

// assignmentPayload copies rows so later edits to the table do not leak into
// an in-flight request. Labels are trimmed the same way the validator
// compares them, so the server receives the values that were checked.
func assignmentPayload(rows []models.DeviceAssignment) []models.DeviceAssignment {
	payload := slices.Clone(rows)
	for i := range payload {
		payload[i].TrainingLabel = strings.TrimSpace(payload[i].TrainingLabel)
	}
	return payload
}
