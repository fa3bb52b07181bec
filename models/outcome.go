// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OutcomeKind classifies the result of one submit attempt.
type OutcomeKind int

const (
	// OutcomeSuccess means the server accepted the submission.
	OutcomeSuccess OutcomeKind = iota + 1

	// OutcomeValidationFailure means the rows were rejected locally and no
	// request was sent.
	OutcomeValidationFailure

	// OutcomeRequestFailure covers both a non-success response and a
	// transport-level error.
	OutcomeRequestFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationFailure:
		return "validation_failure"
	case OutcomeRequestFailure:
		return "request_failure"
	default:
		return "unknown"
	}
}

// Outcome is what a single submit interaction reports to the user. It only
// lives long enough to drive one notification.
type Outcome struct {
	Kind OutcomeKind

	// Message is the human-readable text shown in the notification.
	Message string

	// Rows holds the indices of rows that must be flagged as invalid.
	// Only set for OutcomeValidationFailure.
	Rows []int
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}
