package service

import "github.com/MKhiriev/messagely/models"

// CanView allows the sender and the recipient of msg to see it.
func CanView(principal string, msg models.MessageDetails) error {
	if principal != "" && (principal == msg.FromUser.Username || principal == msg.ToUser.Username) {
		return nil
	}
	return ErrUnauthorized
}

// CanMarkRead allows only the recipient of msg to mark it read.
func CanMarkRead(principal string, msg models.MessageDetails) error {
	if principal != "" && principal == msg.ToUser.Username {
		return nil
	}
	return ErrUnauthorized
}
