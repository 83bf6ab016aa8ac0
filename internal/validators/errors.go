package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyFirstName   = errors.New("first_name is required")
	ErrEmptyLastName    = errors.New("last_name is required")
	ErrEmptyPhone       = errors.New("phone is required")
	ErrEmptySender      = errors.New("from_username is required")
	ErrEmptyRecipient   = errors.New("to_username is required")
	ErrEmptyBody        = errors.New("body is required")
	ErrInvalidMessageID = errors.New("invalid message id")
)
