package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

// fileBackend keeps the document in <dataDir>/data.json.
type fileBackend struct {
	path   string
	logger *logger.Logger
}

// NewFileBackend returns a backend rooted at dataDir. The directory is
// created on the first Save.
func NewFileBackend(dataDir string, log *logger.Logger) DocumentBackend {
	return &fileBackend{
		path:   filepath.Join(dataDir, DocumentFileName),
		logger: log,
	}
}

func (f *fileBackend) Load(ctx context.Context) (models.Document, error) {
	body, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewDocument(), nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileBackend.Load").Str("path", f.path).Msg("error reading document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	return decodeDocument(body)
}

func (f *fileBackend) Save(ctx context.Context, doc models.Document) error {
	log := logger.FromContext(ctx)

	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		log.Err(err).Str("func", "*fileBackend.Save").Str("path", f.path).Msg("error creating data directory")
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if err = os.WriteFile(f.path, body, 0o600); err != nil {
		log.Err(err).Str("func", "*fileBackend.Save").Str("path", f.path).Msg("error writing document")
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	return nil
}
