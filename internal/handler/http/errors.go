// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnsupportedContentType is returned when a submission is neither JSON
	// nor form encoded.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrInvalidBody is returned when a submission body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
)
