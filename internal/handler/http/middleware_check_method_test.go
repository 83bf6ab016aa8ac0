// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/messages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET parameterised route passes through", method: http.MethodGet, path: "/messages/7", expectedStatus: http.StatusOK},
		{name: "POST registered route passes through", method: http.MethodPost, path: "/messages", expectedStatus: http.StatusCreated},
		{name: "DELETE on GET route is reported as not found", method: http.MethodDelete, path: "/messages/7", expectedStatus: http.StatusNotFound},
		{name: "GET on POST route is reported as not found", method: http.MethodGet, path: "/messages", expectedStatus: http.StatusNotFound},
		{name: "PUT on users is reported as not found", method: http.MethodPut, path: "/users", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"error":{"message":"Not Found","status":404}}`, rec.Body.String())
			}
		})
	}
}
