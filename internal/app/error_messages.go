// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the admin
// client and the development receiver.
//
// The client shows these texts in notifications; the receiver writes them
// into the "message" field of its responses. Keeping them in one place keeps
// both sides worded the same.
package app

const (
	// MsgAssignmentsUpdated is shown after the server accepted a device
	// assignment submission.
	MsgAssignmentsUpdated = "Device assignments updated successfully."

	// MsgAssignmentsFailed is shown when the server rejected a device
	// assignment submission without giving a reason.
	MsgAssignmentsFailed = "Failed to update device assignments."

	// MsgConfigUpdated is shown after the server accepted the configuration
	// form.
	MsgConfigUpdated = "Configuration updated successfully."

	// MsgConfigFailed is shown when the server rejected the configuration
	// form without giving a reason.
	MsgConfigFailed = "Failed to update configuration."

	// MsgNetworkError is shown when no usable response arrived.
	MsgNetworkError = "An error occurred. Please try again."

	// MsgUnassignedLabel is shown when at least one device has no training
	// label.
	MsgUnassignedLabel = "Please assign a training label to all devices."

	// MsgDuplicateLabel is shown when a training label is chosen for more
	// than one device.
	MsgDuplicateLabel = "Each training label may be assigned to only one device."

	// MsgInvalidAccountID is shown when the Wild Apricot account id is not a
	// positive number of at most ten digits.
	MsgInvalidAccountID = "Invalid Wild Apricot Account ID. Please enter a valid number."

	// MsgInvalidDataProvided is returned by the receiver when the request
	// body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned by the receiver when an unexpected
	// failure occurs.
	MsgInternalServerError = "internal server error"
)
