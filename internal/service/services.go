package service

import (
	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/crypto"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
)

type Services struct {
	StorageService   StorageService
	AuthService      AuthService
	UserService      UserService
	ProjectService   ProjectService
	TodoService      TodoService
	NoteService      NoteService
	DashboardService DashboardService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()

	projectService := NewProjectValidationService().Wrap(
		NewProjectService(storages.ProjectRepository, storages.UserRepository, logger),
	)

	return &Services{
		StorageService: NewStorageService(storages.Storage, cfg.App.Version, logger),
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		),
		UserService: NewUserValidationService().Wrap(
			NewUserService(storages.UserRepository, hasher, logger),
		),
		ProjectService: NewProjectAccessService(storages.UserRepository, storages.ProjectRepository).Wrap(projectService),
		TodoService: NewTodoAccessService(storages.UserRepository, storages.ProjectRepository, storages.TodoRepository).Wrap(
			NewTodoValidationService().Wrap(
				NewTodoService(storages.TodoRepository, storages.ProjectRepository, logger),
			),
		),
		NoteService: NewNoteAccessService(storages.UserRepository, storages.ProjectRepository, storages.NoteRepository).Wrap(
			NewNoteValidationService().Wrap(
				NewNoteService(storages.NoteRepository, storages.ProjectRepository, logger),
			),
		),
		DashboardService: NewDashboardService(projectService, storages.TodoRepository, logger),
	}
}
