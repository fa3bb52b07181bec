// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/dingus-admin/models"
)

type memoryAssignmentStorage struct {
	mu   sync.RWMutex
	rows []models.DeviceAssignment
}

func NewMemoryAssignmentStorage() AssignmentStorage {
	return &memoryAssignmentStorage{rows: []models.DeviceAssignment{}}
}

func (s *memoryAssignmentStorage) ReplaceAssignments(ctx context.Context, rows []models.DeviceAssignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := slices.Clone(rows)
	if snapshot == nil {
		snapshot = []models.DeviceAssignment{}
	}

	s.mu.Lock()
	s.rows = snapshot
	s.mu.Unlock()

	return nil
}

func (s *memoryAssignmentStorage) ListAssignments(ctx context.Context) ([]models.DeviceAssignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.rows), nil
}

type memoryConfigStorage struct {
	mu    sync.RWMutex
	form  models.ConfigForm
	saved bool
}

func NewMemoryConfigStorage() ConfigStorage {
	return &memoryConfigStorage{}
}

func (s *memoryConfigStorage) SaveConfig(ctx context.Context, form models.ConfigForm) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.form = form
	s.saved = true
	s.mu.Unlock()

	return nil
}

func (s *memoryConfigStorage) GetConfig(ctx context.Context) (models.ConfigForm, error) {
	if err := ctx.Err(); err != nil {
		return models.ConfigForm{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.saved {
		return models.ConfigForm{}, ErrConfigNotFound
	}
	return s.form, nil
}
