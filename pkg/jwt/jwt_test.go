package jwt

import (
	"strings"
	"testing"
	"time"

	"clinic-directory/config"
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AdminExpiry:   72 * time.Hour,
		DoctorExpiry:  30 * time.Minute,
		PatientExpiry: 30 * time.Minute,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	service := newService()
	subjectID := uuid.New()

	token, tokenID, err := service.GenerateToken(subjectID, entity.RoleDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRoleScopedExpiry(t *testing.T) {
	service := newService()

	assert.Equal(t, 72*time.Hour, service.ExpiryFor(entity.RoleAdmin))
	assert.Equal(t, 30*time.Minute, service.ExpiryFor(entity.RoleDoctor))
	assert.Equal(t, 30*time.Minute, service.ExpiryFor(entity.RolePatient))

	adminToken, _, err := service.GenerateToken(uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)
	doctorToken, _, err := service.GenerateToken(uuid.New(), entity.RoleDoctor)
	require.NoError(t, err)

	adminClaims, err := service.ValidateToken(adminToken)
	require.NoError(t, err)
	doctorClaims, err := service.ValidateToken(doctorToken)
	require.NoError(t, err)

	// The admin token outlives the doctor token by days
	assert.True(t, adminClaims.ExpiresAt.After(doctorClaims.ExpiresAt.Add(24*time.Hour)))
}

func TestValidateFailsClosed(t *testing.T) {
	service := newService()

	token, _, err := service.GenerateToken(uuid.New(), entity.RoleDoctor)
	require.NoError(t, err)

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + ".eyJyb2xlIjoiYWRtaW4ifQ." + parts[2]
		_, err := service.ValidateToken(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: "other-secret", DoctorExpiry: 30 * time.Minute})
		otherToken, _, err := other.GenerateToken(uuid.New(), entity.RoleDoctor)
		require.NoError(t, err)
		_, err = service.ValidateToken(otherToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{Secret: "test-secret", DoctorExpiry: -time.Minute})
		expiredToken, _, err := expired.GenerateToken(uuid.New(), entity.RoleDoctor)
		require.NoError(t, err)
		_, err = service.ValidateToken(expiredToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
