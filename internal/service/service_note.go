package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

type noteService struct {
	noteRepository    store.NoteRepository
	projectRepository store.ProjectRepository
	ids               utils.IDGenerator
	now               func() time.Time
	logger            *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, projectRepository store.ProjectRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:    noteRepository,
		projectRepository: projectRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (n *noteService) List(ctx context.Context, projectID string) ([]models.Note, error) {
	var (
		notes []models.Note
		err   error
	)
	if projectID == "" {
		notes, err = n.noteRepository.List(ctx)
	} else {
		notes, err = n.noteRepository.ListByProject(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

// Create stores a note. Empty content is allowed.
func (n *noteService) Create(ctx context.Context, create models.NoteCreate) (models.Note, error) {
	if err := checkProject(ctx, n.projectRepository, create.ProjectID); err != nil {
		return models.Note{}, err
	}

	now := n.now().UTC()
	note, err := n.noteRepository.Create(ctx, models.Note{
		ID:        n.ids.Generate(),
		ProjectID: create.ProjectID,
		Content:   create.Content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Create").Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}
	return note, nil
}

func (n *noteService) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	note, err := n.noteRepository.FindByID(ctx, id)
	if err != nil {
		return models.Note{}, mapNoteError(err)
	}

	if update.ProjectID != nil && *update.ProjectID != note.ProjectID {
		if err = checkProject(ctx, n.projectRepository, *update.ProjectID); err != nil {
			return models.Note{}, err
		}
		note.ProjectID = *update.ProjectID
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	note.UpdatedAt = n.now().UTC()

	updated, err := n.noteRepository.Update(ctx, note)
	if err != nil {
		return models.Note{}, mapNoteError(err)
	}
	return updated, nil
}

func (n *noteService) Delete(ctx context.Context, id string) error {
	if err := n.noteRepository.Delete(ctx, id); err != nil {
		return mapNoteError(err)
	}
	return nil
}

func mapNoteError(err error) error {
	if errors.Is(err, store.ErrNoteNotFound) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	return err
}
