package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dingus-admin/internal/app"
	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/internal/store"
	"github.com/MKhiriev/dingus-admin/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	ErrInvalidBody:            http.StatusBadRequest,

	validators.ErrUnassignedLabel:  http.StatusBadRequest,
	validators.ErrDuplicateLabel:   http.StatusBadRequest,
	validators.ErrInvalidAccountID: http.StatusBadRequest,

	store.ErrConfigNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response message for err. Validation
// failures use the same wording the client shows.
func messageFromError(err error) string {
	if msg := service.ValidationMessage(err); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, ErrInvalidBody), errors.Is(err, ErrUnsupportedContentType):
		return app.MsgInvalidDataProvided
	case errors.Is(err, store.ErrConfigNotFound):
		return err.Error()
	default:
		return app.MsgInternalServerError
	}
}
