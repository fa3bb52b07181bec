// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/dingus-admin/internal/adapter"
	"github.com/MKhiriev/dingus-admin/internal/app"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/mock"
	"github.com/MKhiriev/dingus-admin/internal/notify"
	"github.com/MKhiriev/dingus-admin/internal/utils"
	"github.com/MKhiriev/dingus-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAssignmentSvc builds the service with mocked adapter and notifier.
func newTestAssignmentSvc(t *testing.T, ctrl *gomock.Controller) (ClientAssignmentService, *mock.MockServerAdapter, *mock.MockNotifier) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockNotifier := mock.NewMockNotifier(ctrl)

	return NewClientAssignmentService(mockAdapter, mockNotifier, logger.Nop()), mockAdapter, mockNotifier
}

func rows(labels ...string) []models.DeviceAssignment {
	out := make([]models.DeviceAssignment, len(labels))
	for i, l := range labels {
		out[i] = models.DeviceAssignment{
			IPAddress:     fmt.Sprintf("192.168.1.%d", 10+i),
			MACAddress:    fmt.Sprintf("00:1a:2b:3c:4d:%02x", i),
			TrainingLabel: l,
		}
	}
	return out
}

// ── validation ───────────────────────────────────────────────────────────────

func TestClientAssignmentService_Submit_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		rows     []models.DeviceAssignment
		wantMsg  string
		wantRows []int
	}{
		{
			name:     "missing label",
			rows:     rows("Laser", ""),
			wantMsg:  app.MsgUnassignedLabel,
			wantRows: []int{1},
		},
		{
			name:     "shared label",
			rows:     rows("Laser", "Lathe", "Laser"),
			wantMsg:  app.MsgDuplicateLabel,
			wantRows: []int{0, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)

			want := models.Outcome{Kind: models.OutcomeValidationFailure, Message: tt.wantMsg, Rows: tt.wantRows}

			mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), gomock.Any()).Times(0)
			mockNotifier.EXPECT().Notify(gomock.Any(), want).Return(nil).Times(1)

			got, err := svc.Submit(context.Background(), tt.rows)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, StateIdle, svc.State())
		})
	}
}

// ── request outcomes ─────────────────────────────────────────────────────────

func TestClientAssignmentService_Submit_RequestOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		adapterErr error
		want       models.Outcome
	}{
		{
			name: "accepted",
			want: models.Outcome{Kind: models.OutcomeSuccess, Message: app.MsgAssignmentsUpdated},
		},
		{
			name:       "rejected with server message",
			adapterErr: &adapter.ResponseError{Status: 400, Message: "Unknown training: Welding"},
			want:       models.Outcome{Kind: models.OutcomeRequestFailure, Message: "Unknown training: Welding"},
		},
		{
			name:       "rejected without message",
			adapterErr: &adapter.ResponseError{Status: 500},
			want:       models.Outcome{Kind: models.OutcomeRequestFailure, Message: app.MsgAssignmentsFailed},
		},
		{
			name:       "transport error",
			adapterErr: fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport),
			want:       models.Outcome{Kind: models.OutcomeRequestFailure, Message: app.MsgNetworkError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)
			input := rows("Laser", "Lathe")

			gomock.InOrder(
				mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), input).Return(tt.adapterErr).Times(1),
				mockNotifier.EXPECT().Notify(gomock.Any(), tt.want).Return(nil).Times(1),
			)

			got, err := svc.Submit(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientAssignmentService_Submit_EmptySetIsSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)

	mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), gomock.Len(0)).Return(nil)
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Submit(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, got.OK())
}

func TestClientAssignmentService_Submit_PayloadIsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)
	input := rows("Laser", "Lathe")

	mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload []models.DeviceAssignment) error {
			input[0].TrainingLabel = "changed"
			assert.Equal(t, "Laser", payload[0].TrainingLabel)
			return nil
		},
	)
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
}

func TestClientAssignmentService_Submit_PayloadLabelsTrimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)
	input := rows("  Laser ", "Lathe\t")

	want := rows("Laser", "Lathe")
	mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), want).Return(nil).Times(1)
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, outcome.OK())
	assert.Equal(t, "  Laser ", input[0].TrainingLabel)
}

func TestClientAssignmentService_Submit_TraceIDPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)

	mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ []models.DeviceAssignment) error {
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.NotEmpty(t, traceID)
			return nil
		},
	)
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Submit(context.Background(), rows("Laser"))
	require.NoError(t, err)
}

func TestClientAssignmentService_Submit_NotifierErrorIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)

	mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), gomock.Any()).Return(nil)
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notify.ErrDisplayUnavailable)

	got, err := svc.Submit(context.Background(), rows("Laser"))
	require.NoError(t, err)
	assert.True(t, got.OK())
}

// ── re-entrancy ──────────────────────────────────────────────────────────────

func TestClientAssignmentService_Submit_InProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockNotifier := newTestAssignmentSvc(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	mockAdapter.EXPECT().UpdateDeviceAssignments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, []models.DeviceAssignment) error {
			close(started)
			<-release
			return nil
		},
	).Times(1)
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Submit(context.Background(), rows("Laser"))
		assert.NoError(t, err)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first submit never reached the adapter")
	}
	assert.Equal(t, StateSubmitting, svc.State())

	_, err := svc.Submit(context.Background(), rows("Lathe"))
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	wg.Wait()
	assert.Equal(t, StateIdle, svc.State())
}

func TestSubmitState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "unknown", SubmitState(42).String())
}
