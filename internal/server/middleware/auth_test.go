package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubClaims struct {
	clientID string
}

func (c *stubClaims) GetClientID() string { return c.clientID }

type stubValidator struct {
	valid string
}

func (v *stubValidator) ValidateToken(tokenString string) (ClientIDGetter, error) {
	if tokenString == v.valid {
		return &stubClaims{clientID: "remix-plugin"}, nil
	}
	return nil, errors.New("invalid token")
}

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seenClientID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenClientID = ClientID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return Auth(&stubValidator{valid: "good-token"})(next), &seenClientID
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", authHeader: "Bearer bad-token", wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer good-token", wantStatus: http.StatusOK},
		{name: "case-insensitive scheme", authHeader: "bearer good-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := protected(t)
			req := httptest.NewRequest(http.MethodGet, "/compile-to-sierra/test.cairo", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuth_ClientIDInContext(t *testing.T) {
	handler, seen := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "remix-plugin", *seen)
}
