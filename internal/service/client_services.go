package service

import (
	"github.com/MKhiriev/dingus-admin/internal/adapter"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/notify"
)

type ClientServices struct {
	AssignmentService ClientAssignmentService
	ConfigService     ClientConfigService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, notifier notify.Notifier, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AssignmentService: NewClientAssignmentService(serverAdapter, notifier, log),
		ConfigService:     NewClientConfigService(serverAdapter, notifier, log),
	}
}
