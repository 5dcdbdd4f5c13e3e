package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-directory/internal/domain/repository"
	"clinic-directory/pkg/jwt"
	"clinic-directory/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	SubjectIDKey contextKey = "subject_id"
	RoleKey      contextKey = "role"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService   *jwt.JWTService
	sessionStore repository.SessionStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionStore repository.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check the session store so logged-out tokens stop working before
		// their cryptographic expiry
		exists, err := m.sessionStore.Exists(r.Context(), claims.Role, claims.SubjectID.String(), claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), SubjectIDKey, claims.SubjectID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectIDFromContext extracts the authenticated subject ID from context
func GetSubjectIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	subjectID, ok := ctx.Value(SubjectIDKey).(uuid.UUID)
	return subjectID, ok
}

// GetRoleFromContext extracts the authenticated role from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetTokenIDFromContext extracts the token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
