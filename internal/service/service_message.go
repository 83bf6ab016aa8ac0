// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/store"
	"github.com/MKhiriev/messagely/models"
)

// messageService is the concrete implementation of MessageService.
// A successful Create hands the recipient to the notifier; delivery runs
// detached from the request and its outcome never reaches the caller.
type messageService struct {
	messageRepository store.MessageRepository
	notifier          Notifier

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, notifier Notifier, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		notifier:          notifier,
		logger:            logger,
	}
}

// Create stores a new unread message.
// A missing sender or recipient and an empty body yield ErrValidation.
func (m *messageService) Create(ctx context.Context, msg models.NewMessage) (models.Message, error) {
	log := logger.FromContext(ctx)

	created, err := m.messageRepository.CreateMessage(ctx, msg)
	if err != nil {
		log.Err(err).
			Str("from_username", msg.FromUsername).
			Str("to_username", msg.ToUsername).
			Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", mapStoreError(err))
	}

	if m.notifier != nil {
		m.notifier.Notify(context.WithoutCancel(ctx), created.ToUsername)
	}

	return created, nil
}

func (m *messageService) Get(ctx context.Context, id int64) (models.MessageDetails, error) {
	msg, err := m.messageRepository.GetMessage(ctx, id)
	if err != nil {
		return models.MessageDetails{}, fmt.Errorf("message search by id failed: %w", mapStoreError(err))
	}

	return msg, nil
}

func (m *messageService) MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	receipt, err := m.messageRepository.MarkMessageRead(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("marking message read failed")
		return models.ReadReceipt{}, fmt.Errorf("marking message read failed: %w", mapStoreError(err))
	}

	return receipt, nil
}

func (m *messageService) GetForPrincipal(ctx context.Context, principal string, id int64) (models.MessageDetails, error) {
	msg, err := m.Get(ctx, id)
	if err != nil {
		return models.MessageDetails{}, err
	}

	if err = CanView(principal, msg); err != nil {
		logger.FromContext(ctx).Warn().Str("principal", principal).Int64("id", id).Msg("message view denied")
		return models.MessageDetails{}, fmt.Errorf("cannot view message %d: %w", id, err)
	}

	return msg, nil
}

// MarkReadForPrincipal checks the recipient before the write. Two concurrent
// calls both succeed and the later UPDATE wins.
func (m *messageService) MarkReadForPrincipal(ctx context.Context, principal string, id int64) (models.ReadReceipt, error) {
	msg, err := m.Get(ctx, id)
	if err != nil {
		return models.ReadReceipt{}, err
	}

	if err = CanMarkRead(principal, msg); err != nil {
		logger.FromContext(ctx).Warn().Str("principal", principal).Int64("id", id).Msg("mark read denied")
		return models.ReadReceipt{}, fmt.Errorf("cannot mark message %d read: %w", id, err)
	}

	return m.MarkRead(ctx, id)
}

func (m *messageService) MessagesFrom(ctx context.Context, username string) ([]models.OutgoingMessage, error) {
	messages, err := m.messageRepository.ListMessagesFrom(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing outgoing messages failed: %w", mapStoreError(err))
	}

	return messages, nil
}

func (m *messageService) MessagesTo(ctx context.Context, username string) ([]models.IncomingMessage, error) {
	messages, err := m.messageRepository.ListMessagesTo(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing incoming messages failed: %w", mapStoreError(err))
	}

	return messages, nil
}
