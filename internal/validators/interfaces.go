// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the rules applied to admin form input. The same
// validators run in the client before a submission is built and in the
// development receiver before a submission is stored.
//
// A Validator accepts any value and switches on its concrete type; unknown
// types yield ErrUnsupportedType. Optional field names narrow validation to
// the named fields.
package validators

import "context"

// Validator validates a value of a type known to the implementation.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
