package service

import (
	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
)

type ClientServices struct {
	StorageService   ClientStorageService
	SessionService   ClientSessionService
	WorkspaceService ClientWorkspaceService
	RefreshJob       ClientRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sessions store.SessionStore, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(serverAdapter, sessions, logger)
	workspaceSvc := NewClientWorkspaceService(serverAdapter, sessionSvc)

	return &ClientServices{
		StorageService:   NewClientStorageService(serverAdapter),
		SessionService:   sessionSvc,
		WorkspaceService: workspaceSvc,
		RefreshJob:       NewClientRefreshJob(workspaceSvc),
	}
}
