package http

import (
	"net/http"

	"github.com/MKhiriev/messagely/models"
	"github.com/go-chi/chi/v5"
)

//	GET /users => {users: [{username, first_name, last_name, phone}, ...]}
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing users failed")
		return
	}

	writeJSON(w, r, models.UsersResponse{Users: users}, http.StatusOK)
}

//	GET /users/{username} => {user: {username, first_name, last_name, phone, join_at, last_login_at}}
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeServiceError(w, r, err, "user lookup failed")
		return
	}

	writeJSON(w, r, models.UserResponse{User: user}, http.StatusOK)
}

//	GET /users/{username}/to => {messages: [{id, body, sent_at, read_at, from_user}, ...]}
func (h *Handler) messagesTo(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.UserService.MessagesTo(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeServiceError(w, r, err, "listing incoming messages failed")
		return
	}

	writeJSON(w, r, models.MessagesResponse{Messages: nonNil(messages)}, http.StatusOK)
}

//	GET /users/{username}/from => {messages: [{id, body, sent_at, read_at, to_user}, ...]}
func (h *Handler) messagesFrom(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.UserService.MessagesFrom(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeServiceError(w, r, err, "listing outgoing messages failed")
		return
	}

	writeJSON(w, r, models.MessagesResponse{Messages: nonNil(messages)}, http.StatusOK)
}

// nonNil makes an empty listing encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
