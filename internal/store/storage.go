package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

// BackendOpener opens the document backend for a data path.
type BackendOpener func(ctx context.Context, dataPath string) (DocumentBackend, error)

// FileBackendOpener opens a [NewFileBackend] for every data path.
func FileBackendOpener(log *logger.Logger) BackendOpener {
	return func(ctx context.Context, dataPath string) (DocumentBackend, error) {
		return NewFileBackend(dataPath, log), nil
	}
}

// SQLBackendOpener keeps every data path as a row of the same database.
func SQLBackendOpener(db *DB) BackendOpener {
	return func(ctx context.Context, dataPath string) (DocumentBackend, error) {
		return NewSQLBackend(db, dataPath), nil
	}
}

// storageConfig is the content of the storage config file.
type storageConfig struct {
	DataPath string `json:"dataPath"`
}

// DocumentStorage is the initialisable handle every repository works through.
//
// The mutex guards the handle's own fields. Load-mutate-save cycles of
// different callers are not serialised, the last Save wins.
type DocumentStorage struct {
	mu       sync.RWMutex
	backend  DocumentBackend
	dataPath string

	open       BackendOpener
	configFile string
	logger     *logger.Logger
}

// NewStorage returns an uninitialised handle. configFile is where the chosen
// data path is remembered; an empty configFile disables persistence.
func NewStorage(open BackendOpener, configFile string, log *logger.Logger) *DocumentStorage {
	return &DocumentStorage{
		open:       open,
		configFile: configFile,
		logger:     log,
	}
}

func (s *DocumentStorage) Initialize(ctx context.Context, dataPath string) error {
	log := logger.FromContext(ctx)

	dataPath = strings.TrimSpace(dataPath)
	if dataPath == "" {
		return ErrEmptyDataPath
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		log.Warn().Str("func", "*DocumentStorage.Initialize").
			Str("current", s.dataPath).
			Str("requested", dataPath).
			Msg("storage already initialized, keeping current data path")
		return nil
	}

	backend, err := s.open(ctx, dataPath)
	if err != nil {
		log.Err(err).Str("func", "*DocumentStorage.Initialize").Str("data_path", dataPath).Msg("error opening document backend")
		return err
	}

	// creates the document on first use and rewrites it normalised otherwise
	doc, err := backend.Load(ctx)
	if err != nil {
		return err
	}
	if err = backend.Save(ctx, doc); err != nil {
		return err
	}

	if err = s.writeConfig(dataPath); err != nil {
		log.Err(err).Str("func", "*DocumentStorage.Initialize").Str("config_file", s.configFile).Msg("error persisting data path")
		return err
	}

	s.backend = backend
	s.dataPath = dataPath
	log.Info().Str("func", "*DocumentStorage.Initialize").Str("data_path", dataPath).Msg("storage initialized")

	return nil
}

// Restore initialises the handle from dataDir when given, otherwise from the
// data path remembered in the config file. A missing config file leaves the
// handle uninitialised.
func (s *DocumentStorage) Restore(ctx context.Context, dataDir string) error {
	if dataDir != "" {
		return s.Initialize(ctx, dataDir)
	}

	cfg, err := s.readConfig()
	if err != nil {
		return err
	}
	if cfg.DataPath == "" {
		s.logger.Info().Str("func", "*DocumentStorage.Restore").Msg("no data path configured, waiting for setup")
		return nil
	}

	return s.Initialize(ctx, cfg.DataPath)
}

func (s *DocumentStorage) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend != nil
}

func (s *DocumentStorage) DataPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataPath
}

func (s *DocumentStorage) Load(ctx context.Context) (models.Document, error) {
	backend := s.current()
	if backend == nil {
		return models.Document{}, ErrStorageNotInitialized
	}
	return backend.Load(ctx)
}

func (s *DocumentStorage) Save(ctx context.Context, doc models.Document) error {
	backend := s.current()
	if backend == nil {
		return ErrStorageNotInitialized
	}
	return backend.Save(ctx, doc)
}

func (s *DocumentStorage) current() DocumentBackend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend
}

func (s *DocumentStorage) readConfig() (storageConfig, error) {
	var cfg storageConfig
	if s.configFile == "" {
		return cfg, nil
	}

	body, err := os.ReadFile(s.configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrReadingStorageConfig, err)
	}
	if err = json.Unmarshal(body, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrReadingStorageConfig, err)
	}
	return cfg, nil
}

func (s *DocumentStorage) writeConfig(dataPath string) error {
	if s.configFile == "" {
		return nil
	}

	body, err := json.MarshalIndent(storageConfig{DataPath: dataPath}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStorageConfig, err)
	}
	if dir := filepath.Dir(s.configFile); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingStorageConfig, err)
		}
	}
	if err = os.WriteFile(s.configFile, body, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStorageConfig, err)
	}
	return nil
}
