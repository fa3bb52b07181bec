// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the admin client to submit
// forms to the server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Every failure is reported as one of two sentinels so callers can use
// [errors.Is]: [ErrRequestRejected] when the server answered but did not
// accept the submission (see [ResponseError]), and [ErrTransport] when no
// usable answer arrived.
package adapter

import (
	"context"

	"github.com/MKhiriev/dingus-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter submits admin forms to the server. Each call issues exactly
// one request and never retries.
type ServerAdapter interface {
	// UpdateDeviceAssignments sends the full ordered assignment set using the
	// configured encoding. Returns nil only if the server accepted it.
	UpdateDeviceAssignments(ctx context.Context, rows []models.DeviceAssignment) error

	// UpdateConfig sends the configuration form as JSON. Returns nil only if
	// the server accepted it.
	UpdateConfig(ctx context.Context, form models.ConfigForm) error
}
