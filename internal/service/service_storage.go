package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/MKhiriev/go-project-hub/models"
)

type storageService struct {
	storage   store.Storage
	validator validators.Validator
	version   string
	logger    *logger.Logger
}

func NewStorageService(storage store.Storage, version string, logger *logger.Logger) StorageService {
	return &storageService{
		storage:   storage,
		validator: validators.NewPayloadValidator(),
		version:   version,
		logger:    logger,
	}
}

// Initialize chooses the data directory. When storage is already initialised
// the current directory is kept and reported back.
func (s *storageService) Initialize(ctx context.Context, request models.InitRequest) (models.StorageStatus, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.StorageStatus{}, validationError(err)
	}

	if err := s.storage.Initialize(ctx, request.DataPath); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storageService.Initialize").Msg("storage initialization failed")
		return models.StorageStatus{}, fmt.Errorf("storage initialization failed: %w", err)
	}

	return s.Status(ctx), nil
}

func (s *storageService) Status(ctx context.Context) models.StorageStatus {
	return models.StorageStatus{
		Initialized: s.storage.Initialized(),
		DataPath:    s.storage.DataPath(),
		Version:     s.version,
	}
}
