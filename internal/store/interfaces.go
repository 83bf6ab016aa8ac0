package store

import (
	"context"
	"time"

	"github.com/MKhiriev/messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the users table.
type UserRepository interface {
	// CreateUser inserts the user with join_at and last_login_at set to now.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// UpdateLastLogin sets last_login_at to now. An unknown username is not an error.
	UpdateLastLogin(ctx context.Context, username string) (time.Time, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

// MessageRepository persists messages in the messages table.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.NewMessage) (models.Message, error)
	GetMessage(ctx context.Context, id int64) (models.MessageDetails, error)
	MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error)
	ListMessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error)
	ListMessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error)
}
