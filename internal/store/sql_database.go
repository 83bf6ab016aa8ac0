// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/migrations"
)

// DB bundles the connection pool with everything repositories need to talk
// to one specific SQL dialect: the placeholder format, the error classifier
// and the clock used for every timestamp written.
type DB struct {
	*sql.DB
	driver             string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	now                func() time.Time
	logger             *logger.Logger
}

// NewConnect opens a connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		now:    defaultClock,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// defaultClock returns the current UTC time with microsecond precision, the
// finest resolution PostgreSQL timestamps keep.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// WithClock replaces the clock used for join_at, last_login_at, sent_at and
// read_at. It returns db for chaining.
func (db *DB) WithClock(now func() time.Time) *DB {
	db.now = now
	return db
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify translates err into a store sentinel, falling back to fallback.
func (db *DB) classify(err error, fallback error) error {
	if sentinel := db.errorClassificator.Classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
