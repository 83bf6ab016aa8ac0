// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/models"
)

type messageRepository struct {
	*DB
}

// NewMessageRepository constructs a [MessageRepository] backed by db.
func NewMessageRepository(db *DB) MessageRepository {
	db.logger.Debug().Msg("creating message repository")
	return &messageRepository{DB: db}
}

// CreateMessage inserts an unread message sent now and returns it with the
// store-assigned id.
//
// Error handling:
//   - unknown sender or recipient (foreign key) → [ErrReferencedUserNotFound].
//   - empty body (CHECK) → [ErrConstraintViolation].
func (r *messageRepository) CreateMessage(ctx context.Context, message models.NewMessage) (models.Message, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildCreateMessageQuery(r.builder, message, now)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("failed to build query")
		return models.Message{}, err
	}

	var id int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Str("from", message.FromUsername).
			Str("to", message.ToUsername).
			Msg("error inserting message")
		return models.Message{}, r.classify(err, ErrExecutingStatement)
	}

	return models.Message{
		ID:           id,
		FromUsername: message.FromUsername,
		ToUsername:   message.ToUsername,
		Body:         message.Body,
		SentAt:       now,
	}, nil
}

// GetMessage returns the message joined with both participants' profiles.
func (r *messageRepository) GetMessage(ctx context.Context, id int64) (models.MessageDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMessageQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.GetMessage").Msg("failed to build query")
		return models.MessageDetails{}, err
	}

	var (
		msg    models.MessageDetails
		readAt sql.NullTime
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&msg.ID, &msg.Body, &msg.SentAt, &readAt,
		&msg.FromUser.Username, &msg.FromUser.FirstName, &msg.FromUser.LastName, &msg.FromUser.Phone,
		&msg.ToUser.Username, &msg.ToUser.FirstName, &msg.ToUser.LastName, &msg.ToUser.Phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MessageDetails{}, ErrMessageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.GetMessage").Int64("message_id", id).Msg("error scanning message")
		return models.MessageDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	msg.ReadAt = nullTimePtr(readAt)

	return msg, nil
}

// MarkMessageRead sets read_at to now on every call, including messages
// that are already read.
func (r *messageRepository) MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildMarkMessageReadQuery(r.builder, id, now)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Msg("failed to build query")
		return models.ReadReceipt{}, err
	}

	var updatedID int64
	err = r.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ReadReceipt{}, ErrMessageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Int64("message_id", id).Msg("error marking message read")
		return models.ReadReceipt{}, r.classify(err, ErrExecutingStatement)
	}

	return models.ReadReceipt{ID: updatedID, ReadAt: now}, nil
}

// ListMessagesFrom returns the messages sent by username ordered by id.
func (r *messageRepository) ListMessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error) {
	views, err := r.listMessages(ctx, "from_username", "to_username", username)
	if err != nil {
		return nil, err
	}

	out := make([]models.OutgoingMessage, 0, len(views))
	for _, v := range views {
		out = append(out, models.OutgoingMessage{ID: v.id, ToUser: v.other, Body: v.body, SentAt: v.sentAt, ReadAt: v.readAt})
	}
	return out, nil
}

// ListMessagesTo returns the messages received by username ordered by id.
func (r *messageRepository) ListMessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error) {
	views, err := r.listMessages(ctx, "to_username", "from_username", username)
	if err != nil {
		return nil, err
	}

	out := make([]models.IncomingMessage, 0, len(views))
	for _, v := range views {
		out = append(out, models.IncomingMessage{ID: v.id, FromUser: v.other, Body: v.body, SentAt: v.sentAt, ReadAt: v.readAt})
	}
	return out, nil
}

// messageView is one row of a per-user listing: the message and the other
// participant.
type messageView struct {
	id     int64
	body   string
	sentAt time.Time
	readAt *time.Time
	other  models.UserSummary
}

func (r *messageRepository) listMessages(ctx context.Context, ownColumn, otherColumn, username string) ([]messageView, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesQuery(r.builder, ownColumn, otherColumn, username)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.listMessages").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.listMessages").
			Str("username", username).
			Str("column", ownColumn).
			Msg("error listing messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	views := make([]messageView, 0)
	for rows.Next() {
		var (
			v      messageView
			readAt sql.NullTime
		)
		if err := rows.Scan(&v.id, &v.body, &v.sentAt, &readAt,
			&v.other.Username, &v.other.FirstName, &v.other.LastName, &v.other.Phone); err != nil {
			log.Err(err).Str("func", "*messageRepository.listMessages").Msg("error scanning message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		v.readAt = nullTimePtr(readAt)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return views, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
