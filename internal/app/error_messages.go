// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// messagely server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error.message" field of HTTP error bodies. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body fails
	// validation and no more specific message applies.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidCredentials is returned on login when the username is unknown
	// or the password does not match.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUsernameTaken is returned when registration hits an existing username.
	MsgUsernameTaken = "Username already taken"

	MsgNoSuchUser    = "No such user"
	MsgNoSuchMessage = "No such message"

	// MsgInvalidMessageID is returned when the {id} path segment is not an integer.
	MsgInvalidMessageID = "invalid message id"

	// MsgUnauthorized is returned when the request carries no valid principal
	// or the principal may not access the resource.
	MsgUnauthorized = "Unauthorized"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNotFound = "Not Found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
