// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/dingus-admin/internal/config"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/utils"
	"github.com/MKhiriev/dingus-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, encoding string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{Encoding: encoding}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func sampleRows() []models.DeviceAssignment {
	return []models.DeviceAssignment{
		{IPAddress: "10.0.0.1", MACAddress: "aa:bb:cc:dd:ee:01", TrainingLabel: "Laser"},
		{IPAddress: "10.0.0.2", MACAddress: "aa:bb:cc:dd:ee:02", TrainingLabel: "Lathe"},
	}
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_Errors(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: " "}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)

	_, err = NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080"}, config.ClientApp{Encoding: "xml"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestNewHTTPServerAdapter_Defaults(t *testing.T) {
	a := newTestAdapter(t, "localhost:8080", "")

	assert.Equal(t, config.EncodingJSON, a.encoding)
	assert.Equal(t, config.DefaultAssignmentsPath, a.assignmentsPath)
	assert.Equal(t, config.DefaultConfigPath, a.configPath)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://admin.example.org/", want: "https://admin.example.org"},
		{raw: "  http://10.0.0.5:80  ", want: "http://10.0.0.5:80"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── UpdateDeviceAssignments ─────────────────────────────────────────────────

func TestUpdateDeviceAssignments_JSON(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, config.DefaultAssignmentsPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(utils.TraceIDHeader))

		var got []models.DeviceAssignment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, sampleRows(), got)

		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.EncodingJSON)
	err := a.UpdateDeviceAssignments(context.Background(), sampleRows())

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUpdateDeviceAssignments_JSONFieldNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got []map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, map[string]string{
			"ipAddress":     "10.0.0.1",
			"macAddress":    "aa:bb:cc:dd:ee:01",
			"trainingLabel": "Laser",
		}, got[0])
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.EncodingJSON)
	require.NoError(t, a.UpdateDeviceAssignments(context.Background(), sampleRows()[:1]))
}

func TestUpdateDeviceAssignments_EmptySetSendsArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got []models.DeviceAssignment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.EncodingJSON)
	require.NoError(t, a.UpdateDeviceAssignments(context.Background(), nil))
}

func TestUpdateDeviceAssignments_Form(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Laser", r.FormValue("10.0.0.1"))
		assert.Equal(t, "Lathe", r.FormValue("10.0.0.2"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.EncodingForm)
	require.NoError(t, a.UpdateDeviceAssignments(context.Background(), sampleRows()))
}

func TestUpdateDeviceAssignments_FormEmptySet(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.PostForm)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.EncodingForm)

	for _, rows := range [][]models.DeviceAssignment{nil, {}} {
		require.NoError(t, a.UpdateDeviceAssignments(context.Background(), rows))
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestUpdateDeviceAssignments_Responses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantMessage string
	}{
		{name: "2xx without body", status: http.StatusOK},
		{name: "2xx with success true", status: http.StatusOK, body: `{"success":true,"message":"ok"}`},
		{name: "2xx with plain text", status: http.StatusOK, body: "saved"},
		{name: "2xx with success false", status: http.StatusOK, body: `{"success":false,"message":"Label unknown"}`, wantErr: true, wantMessage: "Label unknown"},
		{name: "400 with message", status: http.StatusBadRequest, body: `{"success":false,"message":"Bad label"}`, wantErr: true, wantMessage: "Bad label"},
		{name: "500 without body", status: http.StatusInternalServerError, wantErr: true},
		{name: "502 html page", status: http.StatusBadGateway, body: "<html>bad gateway</html>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, config.EncodingJSON)
			err := a.UpdateDeviceAssignments(context.Background(), sampleRows())

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrRequestRejected)
			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.Status)
			assert.Equal(t, tt.wantMessage, respErr.Message)
		})
	}
}

func TestUpdateDeviceAssignments_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, config.EncodingJSON)
	err := a.UpdateDeviceAssignments(context.Background(), sampleRows())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrRequestRejected)
}

func TestUpdateDeviceAssignments_CanceledContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL, config.EncodingJSON)
	err := a.UpdateDeviceAssignments(ctx, sampleRows())

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
}

// ── UpdateConfig ────────────────────────────────────────────────────────────

func TestUpdateConfig_Success(t *testing.T) {
	form := models.ConfigForm{
		CertFile:             "/etc/dingus/cert.pem",
		KeyFile:              "/etc/dingus/key.pem",
		WildApricotAccountID: 123456,
		ContactFilterQuery:   "'Membership status' eq 'Active'",
		TagIDFieldName:       "Tag ID",
		TrainingFieldName:    "Trainings",
		LokiHookURL:          "http://loki:3100",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.DefaultConfigPath, r.URL.Path)

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, float64(123456), got["wild_apricot_account_id"])
		assert.Equal(t, "Tag ID", got["tag_id_field_name"])

		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.EncodingForm)
	require.NoError(t, a.UpdateConfig(context.Background(), form))
}

func TestUpdateConfig_CustomPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/config", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, ConfigPath: "/admin/config"},
		config.ClientApp{},
		logger.Nop(),
	)
	require.NoError(t, err)

	err = a.UpdateConfig(context.Background(), models.ConfigForm{WildApricotAccountID: 1})
	assert.ErrorIs(t, err, ErrRequestRejected)
}
