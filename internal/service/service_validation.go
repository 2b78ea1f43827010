package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/MKhiriev/go-project-hub/models"
)

// Validation services check inbound payloads before the wrapped service
// runs. Every failure is reported as ErrValidation wrapping the validator's
// sentinel.

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewPayloadValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, validationError(err)
	}
	return v.AuthService.Register(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, validationError(err)
	}
	return v.AuthService.Login(ctx, credentials)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change); err != nil {
		return validationError(err)
	}
	return v.AuthService.ChangePassword(ctx, userID, change)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewPayloadValidator(),
	}
}

func (v *UserValidationService) Create(ctx context.Context, user models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, validationError(err)
	}
	return v.UserService.Create(ctx, user)
}

func (v *UserValidationService) Update(ctx context.Context, actorID, id string, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, validationError(err)
	}
	return v.UserService.Update(ctx, actorID, id, update)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}

type ProjectValidationService struct {
	ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validators.NewPayloadValidator(),
	}
}

func (v *ProjectValidationService) Create(ctx context.Context, project models.ProjectCreate) (models.Project, error) {
	if err := v.validator.Validate(ctx, project); err != nil {
		return models.Project{}, validationError(err)
	}
	return v.ProjectService.Create(ctx, project)
}

func (v *ProjectValidationService) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Project{}, validationError(err)
	}
	return v.ProjectService.Update(ctx, id, update)
}

func (v *ProjectValidationService) Move(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error) {
	if err := v.validator.Validate(ctx, move); err != nil {
		return nil, validationError(err)
	}
	return v.ProjectService.Move(ctx, id, move)
}

func (v *ProjectValidationService) Share(ctx context.Context, id string, share models.ShareRequest) (models.Project, error) {
	if err := v.validator.Validate(ctx, share); err != nil {
		return models.Project{}, validationError(err)
	}
	return v.ProjectService.Share(ctx, id, share)
}

func (v *ProjectValidationService) Wrap(inner ProjectService) ProjectService {
	v.ProjectService = inner
	return v
}

type TodoValidationService struct {
	TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewPayloadValidator(),
	}
}

func (v *TodoValidationService) Create(ctx context.Context, todo models.TodoCreate) (models.Todo, error) {
	if err := v.validator.Validate(ctx, todo); err != nil {
		return models.Todo{}, validationError(err)
	}
	return v.TodoService.Create(ctx, todo)
}

func (v *TodoValidationService) Update(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Todo{}, validationError(err)
	}
	return v.TodoService.Update(ctx, id, update)
}

func (v *TodoValidationService) Wrap(inner TodoService) TodoService {
	v.TodoService = inner
	return v
}

type NoteValidationService struct {
	NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewPayloadValidator(),
	}
}

func (v *NoteValidationService) Create(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, validationError(err)
	}
	return v.NoteService.Create(ctx, note)
}

func (v *NoteValidationService) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, validationError(err)
	}
	return v.NoteService.Update(ctx, id, update)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.NoteService = inner
	return v
}
