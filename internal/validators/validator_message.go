// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/messagely/models"
)

const (
	FieldFromUsername = "from_username"
	FieldToUsername   = "to_username"
	FieldBody         = "body"
	FieldMessageID    = "id"
)

// MessageID is the validation target for operations addressing a stored
// message by its identifier.
type MessageID int64

// MessageValidator implements [Validator] for models.NewMessage,
// models.SendMessageRequest and MessageID.
type MessageValidator struct {
}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewMessage:
		return v.validateNewMessage(value, fields...)
	case *models.NewMessage:
		return v.validateNewMessage(*value, fields...)

	case models.SendMessageRequest:
		return v.validateNewMessage(models.NewMessage{ToUsername: value.ToUsername, Body: value.Body}, withDefault(fields, FieldToUsername, FieldBody)...)
	case *models.SendMessageRequest:
		return v.validateNewMessage(models.NewMessage{ToUsername: value.ToUsername, Body: value.Body}, withDefault(fields, FieldToUsername, FieldBody)...)

	case MessageID:
		if value <= 0 {
			return ErrInvalidMessageID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateNewMessage checks participants are named and the body is not empty.
// A body of only whitespace is accepted, the store only rejects "".
func (v *MessageValidator) validateNewMessage(msg models.NewMessage, fields ...string) error {
	fields = withDefault(fields, FieldFromUsername, FieldToUsername, FieldBody)

	for _, f := range fields {
		switch f {
		case FieldFromUsername:
			if isBlank(msg.FromUsername) {
				return ErrEmptySender
			}
		case FieldToUsername:
			if isBlank(msg.ToUsername) {
				return ErrEmptyRecipient
			}
		case FieldBody:
			if msg.Body == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func withDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
