package service

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrUnknownAccount   = errors.New("unknown account")
	ErrNotFound         = errors.New("message not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDuplicateAccount = errors.New("account already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
