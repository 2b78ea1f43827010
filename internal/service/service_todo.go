package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

type todoService struct {
	todoRepository    store.TodoRepository
	projectRepository store.ProjectRepository
	ids               utils.IDGenerator
	now               func() time.Time
	logger            *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, projectRepository store.ProjectRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository:    todoRepository,
		projectRepository: projectRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (t *todoService) List(ctx context.Context, projectID string) ([]models.Todo, error) {
	var (
		todos []models.Todo
		err   error
	)
	if projectID == "" {
		todos, err = t.todoRepository.List(ctx)
	} else {
		todos, err = t.todoRepository.ListByProject(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	return todos, nil
}

func (t *todoService) Create(ctx context.Context, create models.TodoCreate) (models.Todo, error) {
	if err := checkProject(ctx, t.projectRepository, create.ProjectID); err != nil {
		return models.Todo{}, err
	}

	priority := create.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := t.now().UTC()
	todo, err := t.todoRepository.Create(ctx, models.Todo{
		ID:        t.ids.Generate(),
		ProjectID: create.ProjectID,
		Title:     strings.TrimSpace(create.Title),
		Completed: create.Completed,
		Priority:  priority,
		DueDate:   create.DueDate,
		Tags:      normalizeTags(create.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoService.Create").Msg("todo creation ended with error")
		return models.Todo{}, fmt.Errorf("error creating todo: %w", err)
	}
	return todo, nil
}

func (t *todoService) Update(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error) {
	todo, err := t.todoRepository.FindByID(ctx, id)
	if err != nil {
		return models.Todo{}, mapTodoError(err)
	}

	if update.ProjectID != nil && *update.ProjectID != todo.ProjectID {
		if err = checkProject(ctx, t.projectRepository, *update.ProjectID); err != nil {
			return models.Todo{}, err
		}
		todo.ProjectID = *update.ProjectID
	}
	if update.Title != nil {
		todo.Title = strings.TrimSpace(*update.Title)
	}
	if update.Completed != nil {
		todo.Completed = *update.Completed
	}
	if update.Priority != nil {
		todo.Priority = *update.Priority
	}
	if update.DueDate.Set {
		todo.DueDate = update.DueDate.Value
	}
	if update.Tags != nil {
		todo.Tags = normalizeTags(*update.Tags)
	}
	todo.UpdatedAt = t.now().UTC()

	updated, err := t.todoRepository.Update(ctx, todo)
	if err != nil {
		return models.Todo{}, mapTodoError(err)
	}
	return updated, nil
}

func (t *todoService) Delete(ctx context.Context, id string) error {
	if err := t.todoRepository.Delete(ctx, id); err != nil {
		return mapTodoError(err)
	}
	return nil
}

// checkProject fails with ErrInvalidProjectReference when projectID does not
// resolve.
func checkProject(ctx context.Context, projects store.ProjectRepository, projectID string) error {
	_, err := projects.FindByID(ctx, projectID)
	if errors.Is(err, store.ErrProjectNotFound) {
		return ErrInvalidProjectReference
	}
	return err
}

// normalizeTags trims tags and drops empty and repeated ones, keeping the
// first occurrence.
func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(result, tag) {
			continue
		}
		result = append(result, tag)
	}
	return result
}

func mapTodoError(err error) error {
	if errors.Is(err, store.ErrTodoNotFound) {
		return fmt.Errorf("%w: %w", ErrTodoNotFound, err)
	}
	return err
}
