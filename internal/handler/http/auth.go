package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/messagely/internal/app"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/service"
	"github.com/MKhiriev/messagely/internal/utils"
	"github.com/MKhiriev/messagely/models"
)

// register creates the account, records the login and returns a token.
//
//	POST /auth/register {username, password, first_name, last_name, phone} => {token}
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Warn().Err(err).Msg(app.MsgInvalidJSON)
		writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	if err = h.services.UserService.RecordLogin(ctx, user.Username); err != nil {
		writeServiceError(w, r, err, "recording login after registration failed")
		return
	}

	h.writeToken(w, r, user.Username, http.StatusOK)
}

// login checks the credentials, records the login and returns a token.
// An unknown username and a wrong password look the same to the client.
//
//	POST /auth/login {username, password} => {token}
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Warn().Err(err).Msg(app.MsgInvalidJSON)
		writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	ok, err := h.services.UserService.Authenticate(ctx, req.Username, req.Password)
	if errors.Is(err, service.ErrUnknownAccount) {
		err = service.ErrInvalidCredentials
	}
	if err == nil && !ok {
		err = service.ErrInvalidCredentials
	}
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	if err = h.services.UserService.RecordLogin(ctx, req.Username); err != nil {
		writeServiceError(w, r, err, "recording login failed")
		return
	}

	log.Debug().Str("username", req.Username).Msg("user successfully logged in")
	h.writeToken(w, r, req.Username, http.StatusOK)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, username string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	writeJSON(w, r, models.TokenResponse{Token: token.SignedString}, status)
}
