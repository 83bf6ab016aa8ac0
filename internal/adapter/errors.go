package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("sms provider unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("sms provider internal error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrEmptyDestination = errors.New("empty destination phone")
	ErrIncompleteConfig = errors.New("incomplete sms provider configuration")
)
