package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/messagely/internal/app"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/service"
	"github.com/MKhiriev/messagely/internal/utils"
	"github.com/MKhiriev/messagely/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is ordered from the most specific sentinel to the most
// generic one: a wrapped validator error wins over service.ErrValidation.
// An empty message means the sentinel text is shown to the client.
var errorStatuses = []errorStatus{
	{target: validators.ErrEmptyUsername, status: http.StatusBadRequest},
	{target: validators.ErrEmptyPassword, status: http.StatusBadRequest},
	{target: validators.ErrEmptyFirstName, status: http.StatusBadRequest},
	{target: validators.ErrEmptyLastName, status: http.StatusBadRequest},
	{target: validators.ErrEmptyPhone, status: http.StatusBadRequest},
	{target: validators.ErrEmptyRecipient, status: http.StatusBadRequest},
	{target: validators.ErrEmptyBody, status: http.StatusBadRequest},

	{target: service.ErrInvalidCredentials, status: http.StatusBadRequest, message: app.MsgInvalidCredentials},
	{target: service.ErrDuplicateAccount, status: http.StatusConflict, message: app.MsgUsernameTaken},
	{target: service.ErrUnknownAccount, status: http.StatusNotFound, message: app.MsgNoSuchUser},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: app.MsgNoSuchMessage},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, message: app.MsgUnauthorized},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},
	{target: service.ErrValidation, status: http.StatusBadRequest, message: app.MsgInvalidDataProvided},

	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},
	{target: ErrNoPrincipal, status: http.StatusUnauthorized, message: app.MsgUnauthorized},
}

// statusFromError returns the HTTP status and the client facing message for
// err. Unknown errors are reported as 500 without details.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message == "" {
				return e.status, e.target.Error()
			}
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the matching error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	writeError(w, r, message, status)
}

func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteError(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
