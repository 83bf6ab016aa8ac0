// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/messagely/internal/app"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/utils"
	"github.com/MKhiriev/messagely/models"
	"github.com/go-chi/chi/v5"
)

// getMessage returns the message to its sender or recipient.
//
//	GET /messages/{id} => {message: {id, body, sent_at, read_at, from_user, to_user}}
func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	username, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := messageID(w, r)
	if !ok {
		return
	}

	msg, err := h.services.MessageService.GetForPrincipal(r.Context(), username, id)
	if err != nil {
		writeServiceError(w, r, err, "message lookup failed")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: msg}, http.StatusOK)
}

// sendMessage stores a message from the principal.
//
//	POST /messages {to_username, body} => {message: {id, from_username, to_username, body, sent_at}}
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	username, ok := principal(w, r)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg(app.MsgInvalidJSON)
		writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	msg, err := h.services.MessageService.Create(r.Context(), models.NewMessage{
		FromUsername: username,
		ToUsername:   req.ToUsername,
		Body:         req.Body,
	})
	if err != nil {
		writeServiceError(w, r, err, "sending message failed")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: msg}, http.StatusCreated)
}

// markRead stamps read_at when the principal is the recipient.
//
//	POST /messages/{id}/read => {message: {id, read_at}}
func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	username, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := messageID(w, r)
	if !ok {
		return
	}

	receipt, err := h.services.MessageService.MarkReadForPrincipal(r.Context(), username, id)
	if err != nil {
		writeServiceError(w, r, err, "marking message read failed")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: receipt}, http.StatusOK)
}

func messageID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Warn().Str("id", raw).Msg(app.MsgInvalidMessageID)
		writeError(w, r, app.MsgInvalidMessageID, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
