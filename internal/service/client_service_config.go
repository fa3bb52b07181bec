package service

import (
	"github.com/MKhiriev/dingus-admin/internal/adapter"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/notify"
	"github.com/MKhiriev/dingus-admin/internal/validators"
	"github.com/MKhiriev/dingus-admin/models"
)

type clientConfigService struct {
	*formSubmitter[models.ConfigForm]
}

// NewClientConfigService returns a ClientConfigService that checks the form
// with validators.ConfigFormValidator and sends it through serverAdapter.
func NewClientConfigService(serverAdapter adapter.ServerAdapter, notifier notify.Notifier, log *logger.Logger) ClientConfigService {
	return &clientConfigService{
		formSubmitter: newFormSubmitter("config", validators.NewConfigFormValidator(), serverAdapter.UpdateConfig, notifier, configMessages, log),
	}
}
