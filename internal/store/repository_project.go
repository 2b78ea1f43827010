package store

import (
	"context"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

type projectRepository struct {
	backend DocumentBackend
	logger  *logger.Logger
}

func NewProjectRepository(backend DocumentBackend, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		backend: backend,
		logger:  logger,
	}
}

func projectID(p models.Project) string { return p.ID }

// List returns projects in stored order; sibling order is the slice order.
func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (models.Project, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return models.Project{}, err
	}

	i := indexOf(doc.Projects, id, projectID)
	if i < 0 {
		return models.Project{}, ErrProjectNotFound
	}
	return doc.Projects[i], nil
}

func (r *projectRepository) Create(ctx context.Context, project models.Project) (models.Project, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		doc.Projects = append(doc.Projects, project)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.Create").Msg("error creating project")
		return models.Project{}, err
	}
	return project, nil
}

// Update replaces the project in place so that its position among its
// siblings is kept.
func (r *projectRepository) Update(ctx context.Context, project models.Project) (models.Project, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Projects, project.ID, projectID)
		if i < 0 {
			return ErrProjectNotFound
		}
		doc.Projects[i] = project
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Delete removes only the project itself. Children keep a parent id that no
// longer resolves and are shown as roots; todos and notes stay in place.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Projects, id, projectID)
		if i < 0 {
			return ErrProjectNotFound
		}
		doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
		return nil
	})
}

func (r *projectRepository) Rearrange(ctx context.Context, fn func(projects []models.Project) ([]models.Project, error)) ([]models.Project, error) {
	var result []models.Project
	err := update(ctx, r.backend, func(doc *models.Document) error {
		projects, err := fn(doc.Projects)
		if err != nil {
			return err
		}
		doc.Projects = projects
		result = projects
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
