package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/store"
	"github.com/MKhiriev/dingus-admin/internal/validators"
	"github.com/MKhiriev/dingus-admin/models"
)

type Services struct {
	AssignmentService AssignmentService
	ConfigService     ConfigService
}

func NewServices(storages *store.Storages, log *logger.Logger) *Services {
	return &Services{
		AssignmentService: &assignmentService{
			storage:   storages.AssignmentStorage,
			validator: validators.NewAssignmentValidator(),
			logger:    log,
		},
		ConfigService: &configService{
			storage:   storages.ConfigStorage,
			validator: validators.NewConfigFormValidator(),
			logger:    log,
		},
	}
}

type assignmentService struct {
	storage   store.AssignmentStorage
	validator validators.Validator

	logger *logger.Logger
}

func (s *assignmentService) UpdateAssignments(ctx context.Context, rows []models.DeviceAssignment) error {
	if err := s.validator.Validate(ctx, rows); err != nil {
		return err
	}

	if err := s.storage.ReplaceAssignments(ctx, rows); err != nil {
		return fmt.Errorf("error replacing device assignments: %w", err)
	}

	logger.FromContext(ctx).Info().Int("devices", len(rows)).Msg("device assignments replaced")
	return nil
}

func (s *assignmentService) ListAssignments(ctx context.Context) ([]models.DeviceAssignment, error) {
	rows, err := s.storage.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing device assignments: %w", err)
	}
	return rows, nil
}

type configService struct {
	storage   store.ConfigStorage
	validator validators.Validator

	logger *logger.Logger
}

func (s *configService) UpdateConfig(ctx context.Context, form models.ConfigForm) error {
	if err := s.validator.Validate(ctx, form); err != nil {
		return err
	}

	if err := s.storage.SaveConfig(ctx, form); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	logger.FromContext(ctx).Info().Int("account_id", form.WildApricotAccountID).Msg("configuration saved")
	return nil
}

func (s *configService) GetConfig(ctx context.Context) (models.ConfigForm, error) {
	return s.storage.GetConfig(ctx)
}
