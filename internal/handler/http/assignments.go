package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/dingus-admin/internal/app"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/utils"
	"github.com/MKhiriev/dingus-admin/models"
)

const maxFormMemory = 1 << 20

// updateDeviceAssignments accepts either a JSON array of assignments or a
// form whose fields are device IP addresses holding training labels.
func (h *Handler) updateDeviceAssignments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rows, err := h.decodeAssignments(r)
	if err == nil {
		err = h.services.AssignmentService.UpdateAssignments(r.Context(), rows)
	}
	if err != nil {
		log.Err(err).Msg("device assignments rejected")
		_, _ = utils.WriteSubmitResponse(w, statusFromError(err), messageFromError(err))
		return
	}

	_, _ = utils.WriteSubmitResponse(w, http.StatusOK, app.MsgAssignmentsUpdated)
}

func (h *Handler) listDeviceAssignments(w http.ResponseWriter, r *http.Request) {
	rows, err := h.services.AssignmentService.ListAssignments(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing device assignments failed")
		_, _ = utils.WriteSubmitResponse(w, statusFromError(err), messageFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) decodeAssignments(r *http.Request) ([]models.DeviceAssignment, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
	}

	switch mediaType {
	case "application/json":
		var rows []models.DeviceAssignment
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return rows, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return h.assignmentsFromForm(r)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return h.assignmentsFromForm(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

// assignmentsFromForm maps IP → label fields to rows. Devices already known
// keep their MAC address and position; new IPs follow in sorted order.
func (h *Handler) assignmentsFromForm(r *http.Request) ([]models.DeviceAssignment, error) {
	known, err := h.services.AssignmentService.ListAssignments(r.Context())
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(r.PostForm))
	for ip, values := range r.PostForm {
		if len(values) != 1 {
			return nil, fmt.Errorf("%w: field %q sent %d times", ErrInvalidBody, ip, len(values))
		}
		labels[strings.TrimSpace(ip)] = values[0]
	}

	rows := make([]models.DeviceAssignment, 0, len(labels))
	for _, device := range known {
		label, ok := labels[device.IPAddress]
		if !ok {
			continue
		}
		device.TrainingLabel = label
		rows = append(rows, device)
		delete(labels, device.IPAddress)
	}

	newIPs := make([]string, 0, len(labels))
	for ip := range labels {
		newIPs = append(newIPs, ip)
	}
	slices.Sort(newIPs)
	for _, ip := range newIPs {
		if ip == "" {
			return nil, errors.Join(ErrInvalidBody, errors.New("empty device address"))
		}
		rows = append(rows, models.DeviceAssignment{IPAddress: ip, TrainingLabel: labels[ip]})
	}

	return rows, nil
}
