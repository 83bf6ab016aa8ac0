package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection.
func NewUserRepository(db *DB) UserRepository {
	db.logger.Debug().Msg("creating user repository")
	return &userRepository{DB: db}
}

// CreateUser inserts a new account. join_at and last_login_at both take the
// current time; the returned user carries them.
//
// Error handling:
//   - unique violation on username → [ErrUserAlreadyExists].
//   - NOT NULL / CHECK violation → [ErrConstraintViolation].
//   - anything else → [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user.JoinAt = now
	user.LastLoginAt = now

	query, args, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")
		return models.User{}, r.classify(err, ErrExecutingStatement)
	}

	return user, nil
}

// FindUserByUsername returns the stored account, credential hash included.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, err
	}

	var (
		user        models.User
		lastLoginAt sql.NullTime
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.JoinAt,
		&lastLoginAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Str("username", username).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if lastLoginAt.Valid {
		user.LastLoginAt = lastLoginAt.Time
	}

	return user, nil
}

// UpdateLastLogin stamps last_login_at with the current time and returns it.
// Zero affected rows is logged at debug level only.
func (r *userRepository) UpdateLastLogin(ctx context.Context, username string) (time.Time, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildUpdateLastLoginQuery(r.builder, username, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("failed to build query")
		return time.Time{}, err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Str("username", username).Msg("error updating last login")
		return time.Time{}, r.classify(err, ErrExecutingStatement)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Debug().Str("func", "*userRepository.UpdateLastLogin").Str("username", username).Msg("no user to update last login for")
	}

	return now, nil
}

// ListUsers returns every account summary ordered by join time.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.UserSummary, 0)
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
