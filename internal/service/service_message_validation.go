package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/messagely/internal/validators"
	"github.com/MKhiriev/messagely/models"
)

// MessageValidationService checks message input before the wrapped
// MessageService runs. A non-positive id can never name a stored message
// and is reported as ErrNotFound.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewMessageValidator(),
	}
}

func (v *MessageValidationService) Create(ctx context.Context, msg models.NewMessage) (models.Message, error) {
	if err := v.validator.Validate(ctx, msg); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, msg)
}

func (v *MessageValidationService) Get(ctx context.Context, id int64) (models.MessageDetails, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.MessageDetails{}, err
	}

	return v.inner.Get(ctx, id)
}

func (v *MessageValidationService) MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.ReadReceipt{}, err
	}

	return v.inner.MarkRead(ctx, id)
}

func (v *MessageValidationService) GetForPrincipal(ctx context.Context, principal string, id int64) (models.MessageDetails, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.MessageDetails{}, err
	}

	return v.inner.GetForPrincipal(ctx, principal, id)
}

func (v *MessageValidationService) MarkReadForPrincipal(ctx context.Context, principal string, id int64) (models.ReadReceipt, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.ReadReceipt{}, err
	}

	return v.inner.MarkReadForPrincipal(ctx, principal, id)
}

func (v *MessageValidationService) MessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error) {
	return v.inner.MessagesFrom(ctx, username)
}

func (v *MessageValidationService) MessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error) {
	return v.inner.MessagesTo(ctx, username)
}

func (v *MessageValidationService) Wrap(wrapped MessageService) MessageService {
	v.inner = wrapped
	return v
}

func (v *MessageValidationService) validateID(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, validators.MessageID(id)); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return nil
}
