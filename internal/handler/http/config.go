package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/dingus-admin/internal/app"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/utils"
	"github.com/MKhiriev/dingus-admin/models"
)

func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var form models.ConfigForm
	err := json.NewDecoder(r.Body).Decode(&form)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidBody, err)
	} else {
		err = h.services.ConfigService.UpdateConfig(r.Context(), form)
	}
	if err != nil {
		log.Err(err).Msg("configuration rejected")
		_, _ = utils.WriteSubmitResponse(w, statusFromError(err), messageFromError(err))
		return
	}

	_, _ = utils.WriteSubmitResponse(w, http.StatusOK, app.MsgConfigUpdated)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	form, err := h.services.ConfigService.GetConfig(r.Context())
	if err != nil {
		_, _ = utils.WriteSubmitResponse(w, statusFromError(err), messageFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, form, http.StatusOK)
}
