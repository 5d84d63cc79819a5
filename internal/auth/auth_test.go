package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfava/shoproll/internal/auth"
	"github.com/mfava/shoproll/internal/user"
)

func testUser() *user.User {
	return &user.User{
		ID:    uuid.New(),
		Email: "tech@shop.local",
		Role:  user.RoleTechnician,
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)
	u := testUser()

	token, exp, err := m.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	var gotID uuid.UUID
	var gotRole user.Role

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = auth.UserIDFromContext(r.Context())
		gotRole, _ = auth.RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, u.ID, gotID)
	assert.Equal(t, user.RoleTechnician, gotRole)
}

func TestMiddleware_Rejections(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	expired, _, err := auth.NewManager("test-secret", -time.Hour).Issue(testUser())
	require.NoError(t, err)

	wrongKey, _, err := auth.NewManager("other-secret", time.Hour).Issue(testUser())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + wrongKey},
	}

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	admin := &user.User{ID: uuid.New(), Email: "admin@shop.local", Role: user.RoleAdmin}
	adminToken, _, err := m.Issue(admin)
	require.NoError(t, err)

	techToken, _, err := m.Issue(testUser())
	require.NoError(t, err)

	handler := m.Middleware(auth.RequireRole(user.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+techToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
