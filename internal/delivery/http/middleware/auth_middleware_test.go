package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-directory/config"
	"clinic-directory/internal/domain/entity"
	"clinic-directory/internal/repository"
	"clinic-directory/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AdminExpiry:   72 * time.Hour,
		DoctorExpiry:  30 * time.Minute,
		PatientExpiry: 30 * time.Minute,
	})
}

func TestAuthenticate(t *testing.T) {
	jwtService := newTestJWTService()
	sessionStore := repository.NewMemorySessionStore()
	authMiddleware := NewAuthMiddleware(jwtService, sessionStore)

	subjectID := uuid.New()
	var gotSubjectID uuid.UUID
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubjectID, _ = GetSubjectIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := authMiddleware.Authenticate(next)

	issue := func(t *testing.T) (string, string) {
		t.Helper()
		token, tokenID, err := jwtService.GenerateToken(subjectID, entity.RoleDoctor)
		require.NoError(t, err)
		err = sessionStore.Put(context.Background(), entity.RoleDoctor, subjectID.String(), tokenID, 30*time.Minute)
		require.NoError(t, err)
		return token, tokenID
	}

	do := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token passes with claims in context", func(t *testing.T) {
		token, _ := issue(t)
		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, subjectID, gotSubjectID)
		assert.Equal(t, entity.RoleDoctor, gotRole)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		rec := do("Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		token, tokenID := issue(t)
		err := sessionStore.Delete(context.Background(), entity.RoleDoctor, subjectID.String(), tokenID)
		require.NoError(t, err)

		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(next)

	do := func(ctx context.Context) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("matching role passes", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RoleKey, entity.RoleAdmin)
		assert.Equal(t, http.StatusOK, do(ctx).Code)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RoleKey, entity.RoleDoctor)
		assert.Equal(t, http.StatusForbidden, do(ctx).Code)
	})

	t.Run("no role unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(context.Background()).Code)
	})
}
