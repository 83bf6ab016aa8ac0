package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator translates driver specific errors into the store
// sentinels. Errors it does not recognise are returned as nil so the caller
// can wrap them as generic execution failures.
type ErrorClassificator interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// inspecting the SQLSTATE code of a *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify maps class 23 integrity violations.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrUserAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedUserNotFound
	case pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation,
		pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation:
		return ErrConstraintViolation
	}

	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3
// using the extended result codes of sqlite3.Error.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrUserAlreadyExists
	case sqlite3.ErrConstraintForeignKey:
		return ErrReferencedUserNotFound
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return ErrConstraintViolation
	}

	if sqliteErr.Code == sqlite3.ErrConstraint {
		return ErrConstraintViolation
	}

	return nil
}
