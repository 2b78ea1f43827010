// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/migrations"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB is a database connection together with the dialect details the
// document backend needs.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// driverFromDSN picks pgx for postgres URLs and sqlite3 for everything else.
func driverFromDSN(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return "", ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return driverPostgres, nil
	default:
		return driverSQLite, nil
	}
}

// NewConnectDB opens and pings the database behind dsn.
func NewConnectDB(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	driver, err := driverFromDSN(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Str("driver", driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if driver == driverSQLite {
		// sqlite allows a single writer
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Str("driver", driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "NewConnectDB").Str("driver", driver).Msg("connected to database successfully")

	return newDB(conn, driver, log), nil
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:          conn,
		driver:      driver,
		placeholder: sq.Question,
		logger:      log,
	}
	if driver == driverPostgres {
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	}
	return db
}

// Migrate applies the embedded migrations using the dialect of the driver.
func (db *DB) Migrate() error {
	dialect := "sqlite3"
	if db.driver == driverPostgres {
		dialect = "postgres"
	}
	return migrations.Migrate(db.DB, dialect)
}

// classify wraps err with ErrStorageUnavailable when the driver reports a
// connection problem.
func (db *DB) classify(err error, sentinel error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
