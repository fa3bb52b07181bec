// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/dingus-admin/models"
)

// AssignmentValidator checks a full set of device assignments before it is
// submitted. Every device needs a training label and no label may be shared.
//
// Rows are scanned in display order and the first violation found decides
// which rule is reported. The returned *RowsError lists every row breaking
// that rule.
type AssignmentValidator struct{}

func NewAssignmentValidator() Validator {
	return &AssignmentValidator{}
}

func (v *AssignmentValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case []models.DeviceAssignment:
		return v.validateRows(ctx, value)
	case *[]models.DeviceAssignment:
		if value == nil {
			return nil
		}
		return v.validateRows(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *AssignmentValidator) validateRows(_ context.Context, rows []models.DeviceAssignment) error {
	var (
		unassigned []int
		duplicated []int
		reason     error
	)

	firstSeen := make(map[string]int, len(rows))
	flagged := make(map[int]bool, len(rows))

	for i, row := range rows {
		label := strings.TrimSpace(row.TrainingLabel)
		if label == "" {
			unassigned = append(unassigned, i)
			if reason == nil {
				reason = ErrUnassignedLabel
			}
			continue
		}

		first, seen := firstSeen[label]
		if !seen {
			firstSeen[label] = i
			continue
		}

		if !flagged[first] {
			flagged[first] = true
			duplicated = append(duplicated, first)
		}
		flagged[i] = true
		duplicated = append(duplicated, i)
		if reason == nil {
			reason = ErrDuplicateLabel
		}
	}

	switch reason {
	case nil:
		return nil
	case ErrUnassignedLabel:
		return &RowsError{Reason: reason, Rows: unassigned}
	default:
		slices.Sort(duplicated)
		return &RowsError{Reason: reason, Rows: duplicated}
	}
}
