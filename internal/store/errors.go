package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT into users collides
	// with an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a lookup by username matches no row.
	ErrUserNotFound = errors.New("user was not found")

	// ErrMessageNotFound is returned when a message id matches no row.
	ErrMessageNotFound = errors.New("message was not found")

	// ErrReferencedUserNotFound is returned when a message references a
	// sender or recipient that does not exist (foreign key violation).
	ErrReferencedUserNotFound = errors.New("referenced user does not exist")

	// ErrConstraintViolation is returned for NOT NULL and CHECK violations,
	// e.g. an empty message body.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails for a reason other than a known constraint.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
