// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/dingus-admin/internal/notify"
	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigService struct {
	got models.ConfigForm
}

func (f *fakeConfigService) Submit(_ context.Context, form models.ConfigForm) (models.Outcome, error) {
	f.got = form
	return models.Outcome{Kind: models.OutcomeSuccess}, nil
}

func (f *fakeConfigService) State() service.SubmitState { return service.StateIdle }

func newTestRoot() RootModel {
	tui := New(
		&service.ClientServices{
			AssignmentService: &fakeAssignmentService{},
			ConfigService:     &fakeConfigService{},
		},
		NewProgramNotifier(),
		models.Inventory{
			Devices:   []models.Device{{IPAddress: "10.0.0.1", MACAddress: "00:1a:2b:3c:4d:01"}},
			Trainings: []string{"Laser"},
		},
		models.NewAppBuildInfo("v1.0.0", "", ""),
		time.Second,
		nil,
	)
	return tui.newRootModel(context.Background())
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_Navigation(t *testing.T) {
	r := newTestRoot()
	assert.True(t, r.isMenuPage())

	r, _ = update(t, r, NavigateTo{Page: pageDevices})
	_, ok := r.current.(*DevicesModel)
	assert.True(t, ok)

	r, _ = update(t, r, NavigateTo{Page: "missing"})
	_, ok = r.current.(*DevicesModel)
	assert.True(t, ok, "unknown page keeps the current one")
}

func TestRootModel_ToastLifecycle(t *testing.T) {
	r := newTestRoot()
	outcome := models.Outcome{Kind: models.OutcomeRequestFailure, Message: "Failed to update device assignments."}

	r, cmd := update(t, r, toastMsg{outcome: outcome})
	require.NotNil(t, cmd)
	assert.True(t, r.toast.visible)
	assert.Contains(t, r.View(), outcome.Message)
	firstID := r.toast.id

	// a newer toast must not be hidden by the older timer
	r, _ = update(t, r, toastMsg{outcome: models.Outcome{Kind: models.OutcomeSuccess, Message: "saved!"}})
	r, _ = update(t, r, toastExpiredMsg{id: firstID})
	assert.True(t, r.toast.visible)

	r, _ = update(t, r, toastExpiredMsg{id: r.toast.id})
	assert.False(t, r.toast.visible)
	assert.NotContains(t, r.View(), "saved!")
}

func TestRootModel_ToastDismissedByKey(t *testing.T) {
	r := newTestRoot()
	r, _ = update(t, r, NavigateTo{Page: pageDevices})
	r, _ = update(t, r, toastMsg{outcome: models.Outcome{Kind: models.OutcomeSuccess, Message: "done"}})

	r, cmd := update(t, r, keyPress("esc"))
	assert.Nil(t, cmd, "esc only dismisses the toast")
	assert.False(t, r.toast.visible)
	_, ok := r.current.(*DevicesModel)
	assert.True(t, ok)
}

func TestRootModel_PageResultDeliveredToOwner(t *testing.T) {
	r := newTestRoot()
	r, _ = update(t, r, NavigateTo{Page: pageDevices})
	devices := r.current.(*DevicesModel)
	devices.submitting = true

	r, _ = update(t, r, NavigateTo{Page: pageMenu})
	r, _ = update(t, r, assignmentsSubmittedMsg{outcome: models.Outcome{Kind: models.OutcomeSuccess}})

	assert.False(t, devices.submitting)
	assert.True(t, r.isMenuPage())
}

func TestRootModel_BuildInfoAndQuit(t *testing.T) {
	r := newTestRoot()

	r, _ = update(t, r, keyPress("v"))
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "v1.0.0")

	r, _ = update(t, r, keyPress("esc"))
	assert.False(t, r.showBuildInfo)

	r, cmd := update(t, r, keyPress("ctrl+c"))
	assert.True(t, r.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestConfigModel_SubmitParsesAccountID(t *testing.T) {
	svc := &fakeConfigService{}
	m := NewConfigModel(context.Background(), svc)
	m.SetForm(models.ConfigForm{CertFile: "cert.pem", WildApricotAccountID: 42, TagIDFieldName: "Tag ID"})

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 42, svc.got.WildApricotAccountID)
	assert.Equal(t, "cert.pem", svc.got.CertFile)
	assert.False(t, m.submitting)
}

func TestConfigModel_InvalidAccountIDSentAsZero(t *testing.T) {
	m := NewConfigModel(context.Background(), &fakeConfigService{})
	m.inputs[fieldAccountID].SetValue("12ab")

	assert.Equal(t, 0, m.form().WildApricotAccountID)

	m.Update(configSubmittedMsg{outcome: models.Outcome{Kind: models.OutcomeValidationFailure}})
	assert.True(t, m.invalid)
}

func TestConfigModel_FocusCycles(t *testing.T) {
	m := NewConfigModel(context.Background(), &fakeConfigService{})

	m.Update(keyPress("tab"))
	assert.Equal(t, 1, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(configFields)-1, m.focus)
}

func TestProgramNotifier_NotAttached(t *testing.T) {
	n := NewProgramNotifier()
	err := n.Notify(context.Background(), models.Outcome{Kind: models.OutcomeSuccess})
	assert.ErrorIs(t, err, notify.ErrDisplayUnavailable)
}
