// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a directed text message between two accounts as it is stored.
type Message struct {
	// ID is assigned by the store and grows monotonically.
	ID int64 `json:"id"`

	FromUsername string `json:"from_username"`
	ToUsername   string `json:"to_username"`
	Body         string `json:"body"`

	// SentAt is set at creation and never changes.
	SentAt time.Time `json:"sent_at"`

	// ReadAt stays nil until the recipient marks the message as read.
	ReadAt *time.Time `json:"read_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// MessageDetails is a message joined with both participants' current profiles.
type MessageDetails struct {
	ID       int64       `json:"id"`
	FromUser UserSummary `json:"from_user"`
	ToUser   UserSummary `json:"to_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}

// OutgoingMessage is a message sent by a user, enriched with the recipient profile.
type OutgoingMessage struct {
	ID     int64       `json:"id"`
	ToUser UserSummary `json:"to_user"`
	Body   string      `json:"body"`
	SentAt time.Time   `json:"sent_at"`
	ReadAt *time.Time  `json:"read_at"`
}

// IncomingMessage is a message received by a user, enriched with the sender profile.
type IncomingMessage struct {
	ID       int64       `json:"id"`
	FromUser UserSummary `json:"from_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}

// ReadReceipt is the result of marking a message as read.
type ReadReceipt struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}
