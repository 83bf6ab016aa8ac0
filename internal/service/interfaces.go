package service

import (
	"context"

	"github.com/MKhiriev/messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService is the account directory: registration, credential checks,
// profile lookup and the per-account message views.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Authenticate reports whether password matches the stored credential.
	// An absent account yields ErrUnknownAccount.
	Authenticate(ctx context.Context, username, password string) (bool, error)
	// RecordLogin refreshes last_login_at. Unknown usernames are ignored.
	RecordLogin(ctx context.Context, username string) error
	Get(ctx context.Context, username string) (models.User, error)
	ListAll(ctx context.Context) ([]models.UserSummary, error)
	MessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error)
	MessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error)
}

// MessageService is the message ledger.
type MessageService interface {
	Create(ctx context.Context, msg models.NewMessage) (models.Message, error)
	Get(ctx context.Context, id int64) (models.MessageDetails, error)
	// MarkRead stamps read_at with the current time on every call.
	MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error)

	// GetForPrincipal returns the message only to its sender or recipient.
	GetForPrincipal(ctx context.Context, principal string, id int64) (models.MessageDetails, error)
	// MarkReadForPrincipal marks the message read only for its recipient.
	MarkReadForPrincipal(ctx context.Context, principal string, id int64) (models.ReadReceipt, error)

	MessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error)
	MessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports what is running: the configured release version
// and the metadata linked into the binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Notifier delivers a best-effort "new message" notification to a user.
// Notify must not block the caller and never reports failures.
type Notifier interface {
	Notify(ctx context.Context, username string)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns false with a nil error when the password does not match.
	Compare(hash, password string) (bool, error)
}
