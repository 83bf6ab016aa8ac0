package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/messagely/internal/validators"
	"github.com/MKhiriev/messagely/models"
)

// UserValidationService rejects malformed account requests with
// ErrValidation before they reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *UserValidationService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if err := v.validator.Validate(ctx, models.LoginRequest{Username: username, Password: password}); err != nil {
		return false, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Authenticate(ctx, username, password)
}

func (v *UserValidationService) RecordLogin(ctx context.Context, username string) error {
	if err := v.validateUsername(ctx, username); err != nil {
		return err
	}

	return v.inner.RecordLogin(ctx, username)
}

func (v *UserValidationService) Get(ctx context.Context, username string) (models.User, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return models.User{}, err
	}

	return v.inner.Get(ctx, username)
}

func (v *UserValidationService) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	return v.inner.ListAll(ctx)
}

func (v *UserValidationService) MessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return nil, err
	}

	return v.inner.MessagesFrom(ctx, username)
}

func (v *UserValidationService) MessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return nil, err
	}

	return v.inner.MessagesTo(ctx, username)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

func (v *UserValidationService) validateUsername(ctx context.Context, username string) error {
	if err := v.validator.Validate(ctx, models.LoginRequest{Username: username}, validators.FieldUsername); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
