package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/store"
	"github.com/MKhiriev/messagely/models"
)

// userService is the concrete implementation of UserService.
// Per-account message views are delegated to the MessageService so the
// ledger stays the only reader of the messages table.
type userService struct {
	userRepository store.UserRepository
	messageService MessageService
	hasher         PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, messageService MessageService, hasher PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		messageService: messageService,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register hashes the password and persists the account.
//
// Returns the stored account without its credential or:
//   - ErrValidation if the password cannot be hashed (too long).
//   - ErrDuplicateAccount if the username is taken.
func (u *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, err
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", mapStoreError(err))
	}

	created.PasswordHash = ""
	return created, nil
}

func (u *userService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return false, fmt.Errorf("user search by username failed: %w", mapStoreError(err))
	}

	ok, err := u.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password verification failed")
		return false, err
	}

	return ok, nil
}

func (u *userService) RecordLogin(ctx context.Context, username string) error {
	lastLogin, err := u.userRepository.UpdateLastLogin(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("recording last login failed")
		return fmt.Errorf("recording last login failed: %w", mapStoreError(err))
	}

	logger.FromContext(ctx).Debug().Str("username", username).Time("last_login_at", lastLogin).Msg("login recorded")
	return nil
}

func (u *userService) Get(ctx context.Context, username string) (models.User, error) {
	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", mapStoreError(err))
	}

	user.PasswordHash = ""
	return user, nil
}

func (u *userService) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", mapStoreError(err))
	}

	return users, nil
}

func (u *userService) MessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error) {
	return u.messageService.MessagesFrom(ctx, username)
}

func (u *userService) MessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error) {
	return u.messageService.MessagesTo(ctx, username)
}
