package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

const documentsTable = "documents"

// sqlBackend keeps the document as one row of the documents table, keyed by
// the data path it was initialised with.
type sqlBackend struct {
	db   *DB
	name string
}

func NewSQLBackend(db *DB, name string) DocumentBackend {
	return &sqlBackend{db: db, name: name}
}

func (b *sqlBackend) Load(ctx context.Context) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("body").
		From(documentsTable).
		Where(sq.Eq{"name": b.name}).
		PlaceholderFormat(b.db.placeholder).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlBackend.Load").Msg("error building select query")
		return models.Document{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var body string
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewDocument(), nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlBackend.Load").Str("name", b.name).Msg("error loading document")
		return models.Document{}, b.db.classify(err, ErrReadingDocument)
	}

	return decodeDocument([]byte(body))
}

func (b *sqlBackend) Save(ctx context.Context, doc models.Document) error {
	log := logger.FromContext(ctx)

	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(documentsTable).
		Columns("name", "body", "updated_at").
		Values(b.name, string(body), time.Now().UTC()).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at").
		PlaceholderFormat(b.db.placeholder).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlBackend.Save").Msg("error building upsert query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = b.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlBackend.Save").Str("name", b.name).Msg("error saving document")
		return b.db.classify(err, ErrWritingDocument)
	}

	return nil
}
