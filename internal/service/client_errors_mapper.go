// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/dingus-admin/internal/adapter"
	"github.com/MKhiriev/dingus-admin/internal/app"
	"github.com/MKhiriev/dingus-admin/internal/validators"
	"github.com/MKhiriev/dingus-admin/models"
)

// outcomeMessages is the wording used for one form.
type outcomeMessages struct {
	success string
	failure string
	network string
}

var (
	assignmentMessages = outcomeMessages{
		success: app.MsgAssignmentsUpdated,
		failure: app.MsgAssignmentsFailed,
		network: app.MsgNetworkError,
	}

	configMessages = outcomeMessages{
		success: app.MsgConfigUpdated,
		failure: app.MsgConfigFailed,
		network: app.MsgNetworkError,
	}
)

// ValidationMessage returns the user-facing text for a validator error, or
// an empty string if err is not a known validation failure.
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrUnassignedLabel):
		return app.MsgUnassignedLabel
	case errors.Is(err, validators.ErrDuplicateLabel):
		return app.MsgDuplicateLabel
	case errors.Is(err, validators.ErrInvalidAccountID):
		return app.MsgInvalidAccountID
	default:
		return ""
	}
}

func validationOutcome(err error, msgs outcomeMessages) models.Outcome {
	outcome := models.Outcome{
		Kind:    models.OutcomeValidationFailure,
		Message: ValidationMessage(err),
	}
	if outcome.Message == "" {
		outcome.Message = msgs.failure
	}

	var rowsErr *validators.RowsError
	if errors.As(err, &rowsErr) {
		outcome.Rows = append([]int(nil), rowsErr.Rows...)
	}

	return outcome
}

// requestOutcome maps the adapter result of a sent submission. A message
// supplied by the server replaces the generic failure text.
func requestOutcome(err error, msgs outcomeMessages) models.Outcome {
	if err == nil {
		return models.Outcome{Kind: models.OutcomeSuccess, Message: msgs.success}
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		message := respErr.Message
		if message == "" {
			message = msgs.failure
		}
		return models.Outcome{Kind: models.OutcomeRequestFailure, Message: message}
	}

	return models.Outcome{Kind: models.OutcomeRequestFailure, Message: msgs.network}
}
