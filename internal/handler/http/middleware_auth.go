package http

import (
	"net/http"

	"github.com/MKhiriev/messagely/internal/app"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.AuthService.ParseToken] and stores the token subject in
// the request context (see [utils.WithPrincipal]) before delegating to the
// next handler.
//
// Requests are rejected with 401 Unauthorized when the header is absent,
// malformed, or carries an expired or invalid token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			writeError(w, r, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err, "error occurred during parsing token")
			return
		}

		// downstream handlers read the principal without re-parsing the token
		ctx = utils.WithPrincipal(ctx, token.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ensureCorrectUser lets the request through only when the {username} path
// parameter names the authenticated principal.
func (h *Handler) ensureCorrectUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.GetPrincipalFromContext(r.Context())
		if !ok || principal != chi.URLParam(r, "username") {
			logger.FromRequest(r).Warn().
				Str("principal", principal).
				Str("username", chi.URLParam(r, "username")).
				Msg("access to another user denied")
			writeError(w, r, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// principal returns the authenticated username or writes 401.
func principal(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoPrincipal, "principal is missing")
	}
	return username, ok
}
