package store

import (
	"context"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

type todoRepository struct {
	backend DocumentBackend
	logger  *logger.Logger
}

func NewTodoRepository(backend DocumentBackend, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		backend: backend,
		logger:  logger,
	}
}

func todoID(t models.Todo) string { return t.ID }

func (r *todoRepository) List(ctx context.Context) ([]models.Todo, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Todos, nil
}

func (r *todoRepository) ListByProject(ctx context.Context, projectID string) ([]models.Todo, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return nil, err
	}

	todos := make([]models.Todo, 0)
	for _, t := range doc.Todos {
		if t.ProjectID == projectID {
			todos = append(todos, t)
		}
	}
	return todos, nil
}

func (r *todoRepository) FindByID(ctx context.Context, id string) (models.Todo, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	i := indexOf(doc.Todos, id, todoID)
	if i < 0 {
		return models.Todo{}, ErrTodoNotFound
	}
	return doc.Todos[i], nil
}

func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		doc.Todos = append(doc.Todos, todo)
		return nil
	})
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (r *todoRepository) Update(ctx context.Context, todo models.Todo) (models.Todo, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Todos, todo.ID, todoID)
		if i < 0 {
			return ErrTodoNotFound
		}
		doc.Todos[i] = todo
		return nil
	})
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
	return update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Todos, id, todoID)
		if i < 0 {
			return ErrTodoNotFound
		}
		doc.Todos = append(doc.Todos[:i], doc.Todos[i+1:]...)
		return nil
	})
}
