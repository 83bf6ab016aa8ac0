package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/messagely/internal/store"
)

// mapStoreError translates store sentinels into the service error taxonomy.
// The original error stays in the chain so both sentinels match errors.Is.
// Errors without a mapping are returned unchanged.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrUserAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateAccount, err)
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrUnknownAccount, err)
	case errors.Is(err, store.ErrMessageNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrReferencedUserNotFound),
		errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return err
	}
}
