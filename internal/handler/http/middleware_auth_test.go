package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/messagely/internal/service"
	"github.com/MKhiriev/messagely/internal/utils"
	"github.com/MKhiriev/messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		parseErr      error
		expectParse   bool
		wantStatus    int
		wantPrincipal string
	}{
		{name: "valid token", header: "Bearer good", expectParse: true, wantStatus: http.StatusOK, wantPrincipal: "alice"},
		{name: "lowercase scheme", header: "bearer good", expectParse: true, wantStatus: http.StatusOK, wantPrincipal: "alice"},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer old", expectParse: true, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.expectParse {
				m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{Username: "alice"}, tt.parseErr)
			}

			var gotPrincipal string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPrincipal, _ = utils.GetPrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantPrincipal, gotPrincipal)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).Status)
			}
		})
	}
}

func TestEnsureCorrectUser(t *testing.T) {
	tests := []struct {
		name       string
		principal  string
		username   string
		wantStatus int
	}{
		{name: "same user", principal: "alice", username: "alice", wantStatus: http.StatusOK},
		{name: "other user", principal: "bob", username: "alice", wantStatus: http.StatusUnauthorized},
		{name: "no principal", username: "alice", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/users/"+tt.username, nil), map[string]string{"username": tt.username})
			if tt.principal != "" {
				req = asPrincipal(req, tt.principal)
			}
			rec := httptest.NewRecorder()
			h.ensureCorrectUser(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
