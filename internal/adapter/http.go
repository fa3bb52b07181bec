package adapter

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/MKhiriev/dingus-admin/internal/config"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/utils"
	"github.com/MKhiriev/dingus-admin/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	encoding        string
	assignmentsPath string
	configPath      string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. appCfg.Encoding selects how device assignments are sent.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL, or if the encoding is unknown.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	encoding := appCfg.Encoding
	switch encoding {
	case "":
		encoding = config.EncodingJSON
	case config.EncodingJSON, config.EncodingForm:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, encoding)
	}

	return &httpServerAdapter{
		client:          utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		encoding:        encoding,
		assignmentsPath: orDefault(adapterCfg.AssignmentsPath, config.DefaultAssignmentsPath),
		configPath:      orDefault(adapterCfg.ConfigPath, config.DefaultConfigPath),
		logger:          logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// UpdateDeviceAssignments implements [ServerAdapter]. With the json encoding
// the rows are posted as an array of {ipAddress, macAddress, trainingLabel}
// objects. With the form encoding they are posted as multipart/form-data with
// one field per row, named by IP address and holding the training label.
func (h *httpServerAdapter) UpdateDeviceAssignments(ctx context.Context, rows []models.DeviceAssignment) error {
	req := h.client.R().SetContext(ctx)

	switch h.encoding {
	case config.EncodingForm:
		if len(rows) == 0 {
			setEmptyMultipart(req)
			break
		}
		fields := make(map[string]string, len(rows))
		for _, row := range rows {
			fields[row.IPAddress] = row.TrainingLabel
		}
		req.SetMultipartFormData(fields)
	default:
		if rows == nil {
			rows = []models.DeviceAssignment{}
		}
		req.SetHeader("Content-Type", "application/json").SetBody(rows)
	}

	return h.send(req, h.assignmentsPath, len(rows))
}

// setEmptyMultipart writes a multipart body holding only the closing
// boundary. resty omits the body and the content type for an empty field
// map, which the receiver cannot tell apart from a malformed request.
func setEmptyMultipart(req *resty.Request) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.Close()

	req.SetHeader("Content-Type", mw.FormDataContentType()).SetBody(body.Bytes())
}

// UpdateConfig implements [ServerAdapter]. The form is posted as a JSON
// object using the snake_case field names of [models.ConfigForm].
func (h *httpServerAdapter) UpdateConfig(ctx context.Context, form models.ConfigForm) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form)

	return h.send(req, h.configPath, 1)
}

func (h *httpServerAdapter) send(req *resty.Request, path string, items int) error {
	resp, err := req.Post(path)
	traceID := req.Header.Get(utils.TraceIDHeader)
	if err != nil {
		h.logger.Err(err).
			Str("path", path).
			Str("trace_id", traceID).
			Msg("submit request failed")
		return fmt.Errorf("%w: %s: %w", ErrTransport, path, err)
	}

	mapped := mapResponse(resp)
	h.logger.Debug().
		Str("path", path).
		Str("trace_id", traceID).
		Str("encoding", h.encoding).
		Int("items", items).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		AnErr("result", mapped).
		Msg("submit request finished")

	return mapped
}
