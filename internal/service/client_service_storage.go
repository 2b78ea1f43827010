package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/MKhiriev/go-project-hub/models"
)

type clientStorageService struct {
	adapter adapter.ServerAdapter
}

func NewClientStorageService(serverAdapter adapter.ServerAdapter) ClientStorageService {
	return &clientStorageService{adapter: serverAdapter}
}

func (s *clientStorageService) Status(ctx context.Context) (models.StorageStatus, error) {
	status, err := s.adapter.Status(ctx)
	return status, mapAdapterError(err)
}

func (s *clientStorageService) Initialize(ctx context.Context, dataPath string) (models.InitResponse, error) {
	dataPath = strings.TrimSpace(dataPath)
	if dataPath == "" {
		return models.InitResponse{}, validationError(validators.ErrEmptyDataPath)
	}

	resp, err := s.adapter.Init(ctx, models.InitRequest{DataPath: dataPath})
	return resp, mapAdapterError(err)
}
