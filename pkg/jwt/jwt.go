package jwt

import (
	"errors"
	"time"

	"clinic-directory/config"
	"clinic-directory/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the token subject and its role. Admin and doctor tokens
// share this structure; only the expiry policy differs per role.
type Claims struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Role      string    `json:"role"`
	TokenID   string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// ExpiryFor returns the configured token lifetime for a role. The asymmetry
// (multi-day admin sessions, short doctor sessions) is policy, so it lives
// in configuration rather than here.
func (s *JWTService) ExpiryFor(role string) time.Duration {
	switch role {
	case entity.RoleAdmin:
		return s.config.AdminExpiry
	case entity.RoleDoctor:
		return s.config.DoctorExpiry
	default:
		return s.config.PatientExpiry
	}
}

// GenerateToken issues a signed token for the subject with the role-scoped
// expiry. Returns the signed token and its token ID for session tracking.
func (s *JWTService) GenerateToken(subjectID uuid.UUID, role string) (string, string, error) {
	tokenID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		SubjectID: subjectID,
		Role:      role,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ExpiryFor(role))),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

// ValidateToken verifies the signature and expiry. Verification fails
// closed: malformed, mis-signed and expired tokens are all rejected.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
