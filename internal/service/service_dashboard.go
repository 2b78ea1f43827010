package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/MKhiriev/go-project-hub/models"
)

type dashboardService struct {
	projects       ProjectService
	todoRepository store.TodoRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewDashboardService(projects ProjectService, todoRepository store.TodoRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		projects:       projects,
		todoRepository: todoRepository,
		validator:      validators.NewPayloadValidator(),
		logger:         logger,
	}
}

// Todos merges the todos of every project visible to userID. Open todos come
// first, then the chosen timestamp orders each group. Todos of deleted
// projects are left out.
func (d *dashboardService) Todos(ctx context.Context, userID string, query models.DashboardQuery) ([]models.DashboardTodo, error) {
	if err := d.validator.Validate(ctx, query); err != nil {
		return nil, validationError(err)
	}

	projects, err := d.projects.ListVisible(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	todos, err := d.todoRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}

	result := make([]models.DashboardTodo, 0, len(todos))
	for _, todo := range todos {
		name, ok := names[todo.ProjectID]
		if !ok {
			continue
		}
		result = append(result, models.DashboardTodo{Todo: todo, ProjectName: name})
	}

	SortDashboard(result, query)
	return result, nil
}

// SortDashboard orders todos in place. Empty query fields fall back to
// updated/desc. Undated todos follow dated ones when sorting by due date in
// either direction.
func SortDashboard(todos []models.DashboardTodo, query models.DashboardQuery) {
	key := query.Sort
	if key == "" {
		key = models.SortByUpdated
	}
	desc := query.Order != models.SortAsc

	slices.SortFunc(todos, func(a, b models.DashboardTodo) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}

		var c int
		switch key {
		case models.SortByCreated:
			c = a.CreatedAt.Compare(b.CreatedAt)
		case models.SortByDue:
			if a.DueDate == nil || b.DueDate == nil {
				if a.DueDate == nil && b.DueDate == nil {
					return cmp.Compare(a.ID, b.ID)
				}
				if a.DueDate == nil {
					return 1
				}
				return -1
			}
			c = a.DueDate.Compare(*b.DueDate)
		default:
			c = a.UpdatedAt.Compare(b.UpdatedAt)
		}
		if desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	})
}
