// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound channel abstractions used by the
// messagely server.
//
// The primary abstraction is [SMSSender], which decouples notification
// delivery from the SMS provider. The package ships a Twilio REST
// implementation ([NewTwilioSender]) and a logging implementation
// ([NewLogSender]) used when no provider is configured.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SMSSender delivers a single text message to a phone number.
type SMSSender interface {
	// Send dispatches body to the phone number to. It returns an error if the
	// provider rejects the message or cannot be reached.
	Send(ctx context.Context, to, body string) error
}
