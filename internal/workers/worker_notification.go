// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/messagely/internal/adapter"
	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/store"
)

const notificationTemplate = "You, %s, have received a message on Messagely App!"

type notification struct {
	username string
	log      *logger.Logger
}

// NotificationWorker queues "new message" notifications and delivers them
// by SMS from a fixed pool of goroutines. A notification is dropped when the
// queue is full or delivery fails; the failure is only logged.
type NotificationWorker struct {
	queue   chan notification
	workers int

	users  store.UserRepository
	sender adapter.SMSSender

	// allowedPhones limits delivery to the listed numbers. Empty means everyone.
	allowedPhones map[string]struct{}
	timeout       time.Duration

	wg     sync.WaitGroup
	logger *logger.Logger
}

func NewNotificationWorker(users store.UserRepository, sender adapter.SMSSender, notifierCfg config.Notifier, workersCfg config.Workers, logger *logger.Logger) *NotificationWorker {
	allowed := make(map[string]struct{}, len(notifierCfg.AllowedPhones))
	for _, phone := range notifierCfg.AllowedPhones {
		if phone != "" {
			allowed[phone] = struct{}{}
		}
	}

	return &NotificationWorker{
		queue:         make(chan notification, max(workersCfg.NotificationQueueSize, 1)),
		workers:       max(workersCfg.NotificationWorkers, 1),
		users:         users,
		sender:        sender,
		allowedPhones: allowed,
		timeout:       notifierCfg.Timeout,
		logger:        logger,
	}
}

// Notify enqueues a notification for username without blocking.
func (w *NotificationWorker) Notify(ctx context.Context, username string) {
	log := logger.FromContext(ctx)

	select {
	case w.queue <- notification{username: username, log: log}:
	default:
		log.Warn().Str("username", username).Msg("notification queue is full, notification dropped")
	}
}

// Run starts the consumer goroutines. They stop when ctx is cancelled;
// notifications still queued at that point are discarded.
func (w *NotificationWorker) Run(ctx context.Context) {
	w.logger.Info().Int("workers", w.workers).Int("queue_size", cap(w.queue)).Msg("starting notification workers")

	for range w.workers {
		w.wg.Add(1)
		go w.consume(ctx)
	}
}

func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

func (w *NotificationWorker) consume(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-w.queue:
			if err := w.deliver(ctx, n.username); err != nil {
				n.log.Err(err).Str("username", n.username).Msg("notification was not delivered")
			}
		}
	}
}

func (w *NotificationWorker) deliver(ctx context.Context, username string) error {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	user, err := w.users.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("could not find recipient %s: %w", username, err)
	}
	if err != nil {
		return fmt.Errorf("recipient lookup failed: %w", err)
	}

	if !w.isAllowed(user.Phone) {
		w.logger.Debug().Str("username", username).Msg("recipient phone is not allowed, notification skipped")
		return nil
	}

	if err = w.sender.Send(ctx, user.Phone, fmt.Sprintf(notificationTemplate, username)); err != nil {
		return fmt.Errorf("sms dispatch failed: %w", err)
	}

	return nil
}

func (w *NotificationWorker) isAllowed(phone string) bool {
	if len(w.allowedPhones) == 0 {
		return true
	}
	_, ok := w.allowedPhones[phone]
	return ok
}
