package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/newswire-go/config"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/store/memory"
)

func issueTestToken(t *testing.T, cfg config.AuthConfig) (string, *models.User) {
	t.Helper()
	users := memory.NewUserStore()
	svc := NewService(users, cfg, zap.NewNop())

	u := &models.User{Name: "Jane", Email: "jane@example.com", HashedPassword: "x", Role: models.RoleUser}
	require.NoError(t, users.Create(context.Background(), u))

	token, err := svc.IssueToken(u, time.Hour)
	require.NoError(t, err)
	return token, u
}

func claimsEcho(t *testing.T, gotClaims **Claims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			*gotClaims = claims
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddleware(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-secret"}
	token, user := issueTestToken(t, cfg)

	var gotClaims *Claims
	handler := JWTMiddleware(&cfg)(claimsEcho(t, &gotClaims))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, user.ID, gotClaims.UserID)
	assert.Equal(t, models.RoleUser, gotClaims.Role)
}

func TestJWTMiddlewareRejections(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-secret"}
	foreignToken, _ := issueTestToken(t, config.AuthConfig{JWTSecret: "other-secret"})

	var gotClaims *Claims
	handler := JWTMiddleware(&cfg)(claimsEcho(t, &gotClaims))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, gotClaims)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestOptionalJWT(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-secret"}
	token, user := issueTestToken(t, cfg)

	var gotClaims *Claims
	handler := OptionalJWT(&cfg)(claimsEcho(t, &gotClaims))

	// Anonymous requests pass through without claims.
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotClaims)

	// Invalid tokens are ignored, not rejected.
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotClaims)

	// Valid tokens attach claims.
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, user.ID, gotClaims.UserID)
}
