package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
)

// Storages bundles the storage handle with the repositories built on it.
type Storages struct {
	Storage           *DocumentStorage
	UserRepository    UserRepository
	ProjectRepository ProjectRepository
	TodoRepository    TodoRepository
	NoteRepository    NoteRepository

	db *DB
}

// NewStorages opens the document backend described by cfg and restores the
// data path chosen on a previous run. With a DSN the document lives in the
// database, otherwise in <dataPath>/data.json.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	open := FileBackendOpener(log)

	var db *DB
	if cfg.DB.DSN != "" {
		var err error
		db, err = NewConnectDB(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		open = SQLBackendOpener(db)
	}

	storage := NewStorage(open, cfg.ConfigFile, log)
	if err := storage.Restore(ctx, cfg.DataDir); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error restoring storage, waiting for setup")
	}

	return &Storages{
		Storage:           storage,
		UserRepository:    NewUserRepository(storage, log),
		ProjectRepository: NewProjectRepository(storage, log),
		TodoRepository:    NewTodoRepository(storage, log),
		NoteRepository:    NewNoteRepository(storage, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
