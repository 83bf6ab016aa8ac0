package models

// RegisterRequest carries the fields required to create an account.
// Password is plaintext and only lives for the duration of the request.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// LoginRequest carries the credentials presented on login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SendMessageRequest is the body of POST /messages.
// The sender is never taken from the body, it is the authenticated principal.
type SendMessageRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

// NewMessage is the input of message creation once the sender is known.
type NewMessage struct {
	FromUsername string
	ToUsername   string
	Body         string
}
