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
	"github.com/MKhiriev/go-project-hub/internal/tree"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	userRepository    store.UserRepository
	ids               utils.IDGenerator
	now               func() time.Time
	logger            *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, userRepository store.UserRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		userRepository:    userRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (p *projectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := p.projectRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return projects, nil
}

// ListVisible returns every project for admins and the projects shared with
// userID for everyone else. Document order is preserved.
func (p *projectService) ListVisible(ctx context.Context, userID string) ([]models.Project, error) {
	user, err := p.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	projects, err := p.List(ctx)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return projects, nil
	}

	visible := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if project.HasUser(userID) {
			visible = append(visible, project)
		}
	}
	return visible, nil
}

func (p *projectService) Get(ctx context.Context, id string) (models.Project, error) {
	project, err := p.projectRepository.FindByID(ctx, id)
	if err != nil {
		return models.Project{}, mapProjectError(err)
	}
	return project, nil
}

func (p *projectService) Create(ctx context.Context, create models.ProjectCreate) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := p.checkUsers(ctx, create.OwnerID, create.UserIDs); err != nil {
		return models.Project{}, err
	}

	var parentID *string
	if create.ParentID != nil {
		if _, err := p.projectRepository.FindByID(ctx, *create.ParentID); err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				return models.Project{}, ErrInvalidParent
			}
			return models.Project{}, err
		}
		id := *create.ParentID
		parentID = &id
	}

	now := p.now().UTC()
	project, err := p.projectRepository.Create(ctx, models.Project{
		ID:        p.ids.Generate(),
		Name:      strings.TrimSpace(create.Name),
		OwnerID:   create.OwnerID,
		UserIDs:   withOwner(create.OwnerID, create.UserIDs),
		ParentID:  parentID,
		DataPath:  strings.TrimSpace(create.DataPath),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Err(err).Str("func", "*projectService.Create").Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}

	log.Info().Str("project_id", project.ID).Str("owner_id", project.OwnerID).Msg("project created")
	return project, nil
}

// Update applies a partial change. An explicit null parent moves the project
// to the root level; a parent below the project itself is rejected.
func (p *projectService) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	projects, err := p.projectRepository.List(ctx)
	if err != nil {
		return models.Project{}, fmt.Errorf("error listing projects: %w", err)
	}
	forest := tree.NewForest(projects)

	project, ok := forest.Project(id)
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}

	if update.Name != nil {
		project.Name = strings.TrimSpace(*update.Name)
	}
	if update.DataPath != nil {
		project.DataPath = strings.TrimSpace(*update.DataPath)
	}
	if update.UserIDs != nil {
		if err = p.checkUsers(ctx, project.OwnerID, *update.UserIDs); err != nil {
			return models.Project{}, err
		}
		project.UserIDs = withOwner(project.OwnerID, *update.UserIDs)
	}
	if update.ParentID.Set {
		if project.ParentID, err = checkParent(forest, id, update.ParentID.Value); err != nil {
			return models.Project{}, err
		}
	}
	project.UpdatedAt = p.now().UTC()

	updated, err := p.projectRepository.Update(ctx, project)
	if err != nil {
		return models.Project{}, mapProjectError(err)
	}
	return updated, nil
}

// Delete removes the project only. Its children become roots and its todos
// and notes are left in the document.
func (p *projectService) Delete(ctx context.Context, id string) error {
	if err := p.projectRepository.Delete(ctx, id); err != nil {
		return mapProjectError(err)
	}

	logger.FromContext(ctx).Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// Move nests or reorders project id relative to move.TargetID and returns the
// resulting collection.
func (p *projectService) Move(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error) {
	m := tree.Move{SourceID: id, TargetID: move.TargetID, Mode: move.Mode, Position: move.Position}

	projects, err := p.projectRepository.Rearrange(ctx, func(projects []models.Project) ([]models.Project, error) {
		moved, changed, err := tree.Apply(projects, m)
		if err != nil || !changed {
			return moved, err
		}

		now := p.now().UTC()
		for i := range moved {
			if moved[i].ID == id {
				moved[i].UpdatedAt = now
			}
		}
		return moved, nil
	})
	switch {
	case errors.Is(err, tree.ErrSourceNotFound):
		return nil, fmt.Errorf("%w: %w", ErrProjectNotFound, err)
	case errors.Is(err, tree.ErrCycle):
		return nil, fmt.Errorf("%w: %w", ErrProjectCycle, err)
	case errors.Is(err, tree.ErrInvalidMode):
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.Move").Str("project_id", id).Msg("error moving project")
		return nil, fmt.Errorf("error moving project: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("project_id", id).Str("target_id", move.TargetID).Str("mode", string(move.Mode)).Msg("project moved")
	return projects, nil
}

// Share grants share.UserID access to the project or revokes it when already
// granted. The owner's access cannot be toggled.
func (p *projectService) Share(ctx context.Context, id string, share models.ShareRequest) (models.Project, error) {
	project, err := p.projectRepository.FindByID(ctx, id)
	if err != nil {
		return models.Project{}, mapProjectError(err)
	}
	if share.UserID == project.OwnerID {
		return models.Project{}, ErrOwnerAccess
	}
	if _, err = p.userRepository.FindByID(ctx, share.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Project{}, ErrInvalidUser
		}
		return models.Project{}, err
	}

	if i := slices.Index(project.UserIDs, share.UserID); i >= 0 {
		project.UserIDs = slices.Delete(slices.Clone(project.UserIDs), i, i+1)
	} else {
		project.UserIDs = append(slices.Clone(project.UserIDs), share.UserID)
	}
	project.UpdatedAt = p.now().UTC()

	updated, err := p.projectRepository.Update(ctx, project)
	if err != nil {
		return models.Project{}, mapProjectError(err)
	}
	return updated, nil
}

// checkUsers verifies that the owner and every granted user exist.
func (p *projectService) checkUsers(ctx context.Context, ownerID string, userIDs []string) error {
	if _, err := p.userRepository.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrInvalidOwner
		}
		return err
	}
	for _, userID := range userIDs {
		if userID == ownerID {
			continue
		}
		if _, err := p.userRepository.FindByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return fmt.Errorf("%w: %s", ErrInvalidUser, userID)
			}
			return err
		}
	}
	return nil
}

// checkParent resolves the new parent of project id. A nil parent is the
// root level.
func checkParent(forest *tree.Forest, id string, parentID *string) (*string, error) {
	if parentID == nil {
		return nil, nil
	}
	if _, ok := forest.Project(*parentID); !ok {
		return nil, ErrInvalidParent
	}
	if *parentID == id || forest.IsDescendant(id, *parentID) {
		return nil, ErrProjectCycle
	}
	parent := *parentID
	return &parent, nil
}

// withOwner returns userIDs deduplicated with the owner first.
func withOwner(ownerID string, userIDs []string) []string {
	result := []string{ownerID}
	for _, id := range userIDs {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	return result
}

func mapProjectError(err error) error {
	if errors.Is(err, store.ErrProjectNotFound) {
		return fmt.Errorf("%w: %w", ErrProjectNotFound, err)
	}
	return err
}
