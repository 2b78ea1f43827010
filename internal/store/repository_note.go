package store

import (
	"context"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

type noteRepository struct {
	backend DocumentBackend
	logger  *logger.Logger
}

func NewNoteRepository(backend DocumentBackend, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		backend: backend,
		logger:  logger,
	}
}

func noteID(n models.Note) string { return n.ID }

func (r *noteRepository) List(ctx context.Context) ([]models.Note, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Notes, nil
}

func (r *noteRepository) ListByProject(ctx context.Context, projectID string) ([]models.Note, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0)
	for _, n := range doc.Notes {
		if n.ProjectID == projectID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (r *noteRepository) FindByID(ctx context.Context, id string) (models.Note, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return models.Note{}, err
	}

	i := indexOf(doc.Notes, id, noteID)
	if i < 0 {
		return models.Note{}, ErrNoteNotFound
	}
	return doc.Notes[i], nil
}

func (r *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		doc.Notes = append(doc.Notes, note)
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (r *noteRepository) Update(ctx context.Context, note models.Note) (models.Note, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Notes, note.ID, noteID)
		if i < 0 {
			return ErrNoteNotFound
		}
		doc.Notes[i] = note
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	return update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Notes, id, noteID)
		if i < 0 {
			return ErrNoteNotFound
		}
		doc.Notes = append(doc.Notes[:i], doc.Notes[i+1:]...)
		return nil
	})
}
