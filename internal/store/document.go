package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-project-hub/models"
)

// DocumentFileName is the name of the document file inside a data directory.
const DocumentFileName = "data.json"

func encodeDocument(doc models.Document) ([]byte, error) {
	doc.Normalize()
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	return body, nil
}

func decodeDocument(body []byte) (models.Document, error) {
	doc := models.NewDocument()
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	doc.Normalize()
	return doc, nil
}

// indexOf returns the index of the first item whose id matches, or -1.
func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// update runs one load-mutate-save cycle over the document.
func update(ctx context.Context, backend DocumentBackend, fn func(doc *models.Document) error) error {
	doc, err := backend.Load(ctx)
	if err != nil {
		return err
	}
	if err = fn(&doc); err != nil {
		return err
	}
	return backend.Save(ctx, doc)
}
