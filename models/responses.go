package models

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// UsersResponse wraps the users listing.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

// UserResponse wraps a single user profile.
type UserResponse struct {
	User User `json:"user"`
}

// MessageResponse wraps a single message in any of its representations
// (created message, detailed message or read receipt).
type MessageResponse struct {
	Message any `json:"message"`
}

// MessagesResponse wraps a list of outgoing or incoming message views.
type MessagesResponse struct {
	Messages any `json:"messages"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes the failure: a human readable message and the HTTP status.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
