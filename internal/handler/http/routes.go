package http

import (
	"net/http"

	"github.com/MKhiriev/messagely/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/build", h.getBuildInfo)
	})

	// routes for logged in users
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)

		// only the user himself
		r.Group(func(r chi.Router) {
			r.Use(h.ensureCorrectUser)

			r.Get("/users/{username}", h.getUser)
			r.Get("/users/{username}/to", h.messagesTo)
			r.Get("/users/{username}/from", h.messagesFrom)
		})

		r.Post("/messages", h.sendMessage)
		r.Get("/messages/{id}", h.getMessage)
		r.Post("/messages/{id}/read", h.markRead)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
